package poker

func (s *State) beginShowdown() {
	s.phase = PhaseShowdown
	s.pendingShowdown = s.dealOrder()
	if len(s.pendingShowdown) == 0 {
		s.beginHandKilling()
	}
}

// CanShow reports whether seat has a pending showdown decision.
func (s *State) CanShow(seat int) bool {
	return s.phase == PhaseShowdown && len(s.pendingShowdown) > 0 && s.pendingShowdown[0] == seat
}

// Show reveals seat's hole cards face-up.
func (s *State) Show(seat int) (Event, error) {
	if !s.CanShow(seat) {
		return Event{}, actionErrorf("seat %d has no pending showdown decision", seat)
	}
	for i := range s.holeFaceUp[seat] {
		s.holeFaceUp[seat][i] = true
	}
	s.pendingShowdown = s.pendingShowdown[1:]
	if len(s.pendingShowdown) == 0 {
		s.beginHandKilling()
	}
	return s.emit(Event{Kind: EventShown, Seat: seat, Cards: s.HoleCards(seat)}), nil
}

// Muck folds seat out of showdown without revealing its hole cards.
func (s *State) Muck(seat int) (Event, error) {
	if !s.CanShow(seat) {
		return Event{}, actionErrorf("seat %d has no pending showdown decision", seat)
	}
	s.statuses[seat] = false
	s.muckedCards = append(s.muckedCards, s.holeCards[seat]...)
	s.holeCards[seat] = nil
	s.holeFaceUp[seat] = nil
	s.pendingShowdown = s.pendingShowdown[1:]
	if len(s.pendingShowdown) == 0 {
		s.beginHandKilling()
	}
	return s.emit(Event{Kind: EventMucked, Seat: seat}), nil
}

// CanWinNow reports whether seat's currently-known hand could still win
// at least one pot it is eligible in, given hands already revealed at
// this showdown (§9 supplemented feature 1). With nothing shown yet, a
// seat can always still win.
func (s *State) CanWinNow(seat int) bool {
	if !s.statuses[seat] {
		return false
	}
	pots := s.Pots()
	for _, pot := range pots {
		if !containsSeat(pot.Eligible, seat) {
			continue
		}
		for _, e := range s.handTypes {
			mine, err := e.BestHand(s.holeCards[seat], s.boardCards)
			if err != nil {
				continue
			}
			beaten := false
			for _, other := range pot.Eligible {
				if other == seat || !allRevealed(s.holeFaceUp[other]) || len(s.holeCards[other]) == 0 {
					continue
				}
				theirs, err := e.BestHand(s.holeCards[other], s.boardCards)
				if err != nil {
					continue
				}
				if e.Better(*theirs, *mine) {
					beaten = true
					break
				}
			}
			if !beaten {
				return true
			}
		}
	}
	return false
}

func allRevealed(faceUp []bool) bool {
	if len(faceUp) == 0 {
		return false
	}
	for _, f := range faceUp {
		if !f {
			return false
		}
	}
	return true
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

func (s *State) beginHandKilling() {
	s.phase = PhaseHandKilling
	pots := s.Pots()
	var dead []int
	for i := 0; i < s.numSeats; i++ {
		if !s.statuses[i] || len(s.holeCards[i]) == 0 || !allRevealed(s.holeFaceUp[i]) {
			continue
		}
		if !s.canWinAnyPot(i, pots) {
			dead = append(dead, i)
		}
	}
	s.pendingHandKilling = dead
	if len(dead) == 0 {
		s.beginChipsPushing(pots)
	}
}

func (s *State) canWinAnyPot(seat int, pots []Pot) bool {
	for _, pot := range pots {
		if !containsSeat(pot.Eligible, seat) {
			continue
		}
		for _, e := range s.handTypes {
			mine, err := e.BestHand(s.holeCards[seat], s.boardCards)
			if err != nil {
				continue
			}
			maximal := true
			for _, other := range pot.Eligible {
				if other == seat {
					continue
				}
				theirs, err := e.BestHand(s.holeCards[other], s.boardCards)
				if err != nil {
					continue
				}
				if e.Better(*theirs, *mine) {
					maximal = false
					break
				}
			}
			if maximal {
				return true
			}
		}
	}
	return false
}

// CanKillHand reports whether a hand-killing decision is pending.
func (s *State) CanKillHand() bool {
	return s.phase == PhaseHandKilling && len(s.pendingHandKilling) > 0
}

// KillHand force-mucks the next pending dead hand.
func (s *State) KillHand() (Event, error) {
	if !s.CanKillHand() {
		return Event{}, actionErrorf("no hand is pending to be killed")
	}
	seat := s.pendingHandKilling[0]
	s.pendingHandKilling = s.pendingHandKilling[1:]
	s.muckedCards = append(s.muckedCards, s.holeCards[seat]...)
	s.holeCards[seat] = nil
	s.holeFaceUp[seat] = nil
	if len(s.pendingHandKilling) == 0 {
		s.beginChipsPushing(s.Pots())
	}
	return s.emit(Event{Kind: EventHandKilled, Seat: seat}), nil
}
