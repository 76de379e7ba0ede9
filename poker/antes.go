package poker

// CanPostAnte reports whether an ante is still pending.
func (s *State) CanPostAnte() bool {
	return s.phase == PhaseAntePosting && len(s.pendingAntes) > 0
}

// VerifyPostAnte reports the seat the next PostAnte call would affect, or
// an error if no ante is pending.
func (s *State) VerifyPostAnte() (int, error) {
	if !s.CanPostAnte() {
		return 0, actionErrorf("no ante is pending")
	}
	return s.pendingAntes[0], nil
}

// PostAnte posts the next pending seat's ante, ascending seat index
// (§4.4 "Ante posting").
func (s *State) PostAnte() (Event, error) {
	seat, err := s.VerifyPostAnte()
	if err != nil {
		return Event{}, err
	}
	amount := s.antes[seat]
	if amount > s.stacks[seat] {
		amount = s.stacks[seat]
	}
	s.stacks[seat] -= amount
	s.bets[seat] += amount
	s.anteTotals[seat] += amount
	s.pendingAntes = s.pendingAntes[1:]

	if len(s.pendingAntes) == 0 {
		s.phase = PhaseBetCollection
		s.pendingBetCollect = true
	}
	return s.emit(Event{Kind: EventAntePosted, Seat: seat, Amount: amount}), nil
}

func (s *State) queueBlinds() {
	order := s.blindPostOrder()
	s.pendingBlinds = order
	if len(s.pendingBlinds) == 0 {
		s.beginFirstStreet()
	}
}

// blindPostOrder computes posting order per §4.4: heads-up posts the
// button (small blind) first; 3+ players post starting the seat after
// the button. Only seats with a positive forced bet are included.
func (s *State) blindPostOrder() []int {
	var order []int
	n := s.numSeats
	if len(s.forcedBets) == 0 {
		return nil
	}
	if n == 2 {
		order = []int{s.buttonSeat, (s.buttonSeat + 1) % n}
	} else {
		for i := 1; i <= n; i++ {
			order = append(order, (s.buttonSeat+i)%n)
		}
	}
	var filtered []int
	for _, seat := range order {
		if seat < len(s.forcedBets) && s.forcedBets[seat] > 0 {
			filtered = append(filtered, seat)
		}
	}
	return filtered
}
