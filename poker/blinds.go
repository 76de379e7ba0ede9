package poker

// CanPostBlind reports whether a blind or straddle is still pending.
func (s *State) CanPostBlind() bool {
	return s.phase == PhaseBlindPosting && len(s.pendingBlinds) > 0
}

// VerifyPostBlind reports the seat the next PostBlind call would affect.
func (s *State) VerifyPostBlind() (int, error) {
	if !s.CanPostBlind() {
		return 0, actionErrorf("no blind or straddle is pending")
	}
	return s.pendingBlinds[0], nil
}

// PostBlind posts the next pending seat's blind or straddle, clamped to
// that seat's remaining stack net of its already-posted ante (§4.4
// "Blind/straddle posting").
func (s *State) PostBlind() (Event, error) {
	seat, err := s.VerifyPostBlind()
	if err != nil {
		return Event{}, err
	}
	amount := s.forcedBets[seat]
	if amount > s.stacks[seat] {
		amount = s.stacks[seat]
	}
	s.stacks[seat] -= amount
	s.bets[seat] += amount
	s.pendingBlinds = s.pendingBlinds[1:]

	if len(s.pendingBlinds) == 0 {
		s.beginFirstStreet()
	}
	return s.emit(Event{Kind: EventBlindPosted, Seat: seat, Amount: amount}), nil
}

func (s *State) beginFirstStreet() {
	s.streetIndex = 0
	s.phase = PhaseDealing
	s.queueDealing()
}
