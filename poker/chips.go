package poker

import "sort"

func (s *State) beginChipsPushing(pots []Pot) {
	s.phase = PhaseChipsPushing
	s.pendingChipsPush = pots
	if len(pots) == 0 {
		s.beginChipsPulling()
	}
}

// CanPushChips reports whether a pot is pending distribution.
func (s *State) CanPushChips() bool {
	return s.phase == PhaseChipsPushing && len(s.pendingChipsPush) > 0
}

// PushChips distributes the next pending pot, innermost first, to its
// winner(s) (§4.4 "Chips pushing"). With one eligible player the whole
// pot goes to them; otherwise the pot splits evenly across hand types
// and, within each hand type, evenly across players whose hand is
// maximal under it, with remainders to the earliest eligible seat in
// position order.
func (s *State) PushChips() (Event, error) {
	if !s.CanPushChips() {
		return Event{}, actionErrorf("no pot is pending distribution")
	}
	pot := s.pendingChipsPush[0]
	s.pendingChipsPush = s.pendingChipsPush[1:]

	if len(pot.Eligible) == 1 {
		s.winnings[pot.Eligible[0]] += pot.Amount
	} else {
		s.splitPot(pot)
	}

	if len(s.pendingChipsPush) == 0 {
		s.beginChipsPulling()
	}
	return s.emit(Event{Kind: EventChipsPushed, Seat: -1, Amount: pot.Amount}), nil
}

func (s *State) splitPot(pot Pot) {
	share := pot.Amount / len(s.handTypes)
	remainder := pot.Amount - share*len(s.handTypes)
	order := s.positionOrder()

	for hi, e := range s.handTypes {
		amount := share
		if hi == 0 {
			amount += remainder
		}
		var winners []int
		bestSeat := -1
		for _, seat := range order {
			if !containsSeat(pot.Eligible, seat) {
				continue
			}
			hand, err := e.BestHand(s.holeCards[seat], s.boardCards)
			if err != nil {
				continue
			}
			if bestSeat == -1 {
				bestSeat = seat
				winners = []int{seat}
				continue
			}
			cur, _ := e.BestHand(s.holeCards[bestSeat], s.boardCards)
			if e.Better(*hand, *cur) {
				bestSeat = seat
				winners = []int{seat}
			} else if !e.Better(*cur, *hand) {
				winners = append(winners, seat)
			}
		}
		if len(winners) == 0 {
			continue
		}
		seatShare := amount / len(winners)
		seatRemainder := amount - seatShare*len(winners)
		for wi, seat := range winners {
			win := seatShare
			if wi == 0 {
				win += seatRemainder
			}
			s.winnings[seat] += win
		}
	}
}

// positionOrder returns alive seats starting after the button, used to
// break remainder ties toward the earliest eligible seat.
func (s *State) positionOrder() []int {
	return s.dealOrder()
}

func (s *State) beginChipsPulling() {
	s.phase = PhaseChipsPulling
	var seats []int
	for seat := range s.winnings {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	s.pendingChipsPull = seats
	if len(seats) == 0 {
		s.phase = PhaseTerminal
	}
}

// CanPullChips reports whether a seat's winnings are pending transfer
// into its stack.
func (s *State) CanPullChips() bool {
	return s.phase == PhaseChipsPulling && len(s.pendingChipsPull) > 0
}

// PullChips folds the next pending seat's winnings into its stack.
func (s *State) PullChips() (Event, error) {
	if !s.CanPullChips() {
		return Event{}, actionErrorf("no winnings are pending transfer")
	}
	seat := s.pendingChipsPull[0]
	s.pendingChipsPull = s.pendingChipsPull[1:]
	amount := s.winnings[seat]
	s.stacks[seat] += amount
	delete(s.winnings, seat)
	if len(s.pendingChipsPull) == 0 {
		s.phase = PhaseTerminal
	}
	return s.emit(Event{Kind: EventChipsPulled, Seat: seat, Amount: amount}), nil
}
