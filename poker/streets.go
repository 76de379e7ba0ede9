package poker

func (s *State) advanceAfterStreetBetting() {
	if s.aliveCount() <= 1 {
		s.finishUncontested()
		return
	}
	if s.streetIndex == len(s.streets)-1 {
		s.beginShowdown()
		return
	}
	s.streetIndex++
	s.phase = PhaseDealing
	if !s.aliveWithChips2OrMore() {
		// Show-all-in rule (§4.5): deal every remaining street with no
		// further betting, then reveal at showdown.
		s.queueDealingThenSkipBetting()
		return
	}
	s.queueDealing()
}

// queueDealingThenSkipBetting deals the street normally but, once dealt,
// advances straight to the next street (or showdown) instead of opening
// a betting round.
func (s *State) queueDealingThenSkipBetting() {
	street := s.currentStreet()
	s.pendingBurn = street.BurnBeforeDeal
	s.pendingHole = nil
	for _, faceUp := range street.HoleDealStatuses {
		for _, seat := range s.dealOrder() {
			s.pendingHole = append(s.pendingHole, holeDealSlot{seat: seat, faceUp: faceUp})
		}
	}
	s.pendingBoard = street.BoardDealCount
	s.allInRunout = true
	s.tryAdvanceDealing()
}

func (s *State) finishUncontested() {
	var winner int
	for i := 0; i < s.numSeats; i++ {
		if s.statuses[i] {
			winner = i
			break
		}
	}
	s.phase = PhaseChipsPushing
	s.pendingChipsPush = []Pot{{Amount: s.TotalPot(), Eligible: []int{winner}}}
}
