package poker

import "github.com/lox/pokerengine/card"

// dealOrder returns seats eligible to receive cards this street, starting
// from the seat after the button, ascending. Folded seats never receive
// cards once they have mucked (§3 invariant 4).
func (s *State) dealOrder() []int {
	var order []int
	for i := 1; i <= s.numSeats; i++ {
		seat := (s.buttonSeat + i) % s.numSeats
		if s.statuses[seat] {
			order = append(order, seat)
		}
	}
	return order
}

func (s *State) queueDealing() {
	street := s.currentStreet()
	s.pendingBurn = street.BurnBeforeDeal
	s.pendingHole = nil
	for _, faceUp := range street.HoleDealStatuses {
		for _, seat := range s.dealOrder() {
			s.pendingHole = append(s.pendingHole, holeDealSlot{seat: seat, faceUp: faceUp})
		}
	}
	s.pendingBoard = street.BoardDealCount
	s.tryAdvanceDealing()
}

func (s *State) tryAdvanceDealing() {
	if s.pendingBurn || len(s.pendingHole) > 0 || s.pendingBoard > 0 {
		return
	}
	if s.replacementDealing {
		s.replacementDealing = false
		s.phase = PhaseBetting
		s.beginBettingRound()
		return
	}
	if s.allInRunout {
		s.advanceAfterStreetBetting()
		return
	}
	if s.currentStreet().DrawPhase {
		s.phase = PhaseDrawing
		s.queueDrawing()
		return
	}
	s.phase = PhaseBetting
	s.beginBettingRound()
}

// CanBurnCard reports whether a burn is pending.
func (s *State) CanBurnCard() bool {
	return s.phase == PhaseDealing && s.pendingBurn
}

// BurnCard removes and discards the head of the deck queue.
func (s *State) BurnCard() (Event, error) {
	if !s.CanBurnCard() {
		return Event{}, actionErrorf("no burn is pending")
	}
	c, ok := s.deckQueue.Pop()
	if !ok {
		return Event{}, cardErrorf("deck is empty")
	}
	s.burnedCards = append(s.burnedCards, c)
	s.pendingBurn = false
	s.tryAdvanceDealing()
	return s.emit(Event{Kind: EventCardBurned, Seat: -1, Cards: []card.Card{c}}), nil
}

// CanDealHole reports whether a hole card is pending.
func (s *State) CanDealHole() bool {
	return s.phase == PhaseDealing && !s.pendingBurn && len(s.pendingHole) > 0
}

// VerifyDealHole reports the slot the next DealHole call would fill.
func (s *State) VerifyDealHole() (seat int, faceUp bool, err error) {
	if !s.CanDealHole() {
		return 0, false, actionErrorf("no hole card is pending")
	}
	slot := s.pendingHole[0]
	return slot.seat, slot.faceUp, nil
}

// DealHole deals the next pending hole card from the head of the deck
// queue. known, if non-nil, is a specific card identity to deal (replay
// mode, §4.4 "Dealing uses the deck queue head..."); it is located in the
// queue or burn pile and swapped into dealing position.
func (s *State) DealHole(known *card.Card) (Event, error) {
	seat, faceUp, err := s.VerifyDealHole()
	if err != nil {
		return Event{}, err
	}
	c, err := s.takeCard(known)
	if err != nil {
		return Event{}, err
	}
	s.holeCards[seat] = append(s.holeCards[seat], c)
	s.holeFaceUp[seat] = append(s.holeFaceUp[seat], faceUp)
	s.pendingHole = s.pendingHole[1:]
	s.tryAdvanceDealing()

	revealed := c
	if !faceUp {
		revealed = card.Unknown
	}
	return s.emit(Event{Kind: EventHoleDealt, Seat: seat, Cards: []card.Card{revealed}}), nil
}

// CanDealBoard reports whether a board card is pending.
func (s *State) CanDealBoard() bool {
	return s.phase == PhaseDealing && !s.pendingBurn && len(s.pendingHole) == 0 && s.pendingBoard > 0
}

// DealBoard deals the next pending board card, optionally a known
// identity for replay mode.
func (s *State) DealBoard(known *card.Card) (Event, error) {
	if !s.CanDealBoard() {
		return Event{}, actionErrorf("no board card is pending")
	}
	c, err := s.takeCard(known)
	if err != nil {
		return Event{}, err
	}
	s.boardCards = append(s.boardCards, c)
	s.pendingBoard--
	s.tryAdvanceDealing()
	return s.emit(Event{Kind: EventBoardDealt, Seat: -1, Cards: []card.Card{c}}), nil
}

// takeCard pops the queue head, or in replay mode locates known wherever
// it currently sits (deck queue or burn pile) and swaps it to the front
// first (§4.4, §9 supplemented feature 5).
func (s *State) takeCard(known *card.Card) (card.Card, error) {
	if known == nil {
		c, ok := s.deckQueue.Pop()
		if !ok {
			return card.Card{}, cardErrorf("deck is empty")
		}
		return c, nil
	}
	if idx := s.deckQueue.Locate(*known); idx >= 0 {
		s.deckQueue.SwapToFront(idx)
		c, _ := s.deckQueue.Pop()
		return c, nil
	}
	for i, b := range s.burnedCards {
		if b.Equal(*known) {
			s.burnedCards = append(s.burnedCards[:i], s.burnedCards[i+1:]...)
			return *known, nil
		}
	}
	return card.Card{}, cardErrorf("card %s not available to deal", known)
}

func (s *State) queueDrawing() {
	s.pendingDiscardSeats = s.dealOrder()
	s.pendingReplacement = map[int]int{}
	if len(s.pendingDiscardSeats) == 0 {
		s.phase = PhaseBetting
		s.beginBettingRound()
	}
}

// CanDiscard reports whether a discard/stand-pat decision is pending.
func (s *State) CanDiscard(seat int) bool {
	return s.phase == PhaseDrawing && len(s.pendingDiscardSeats) > 0 && s.pendingDiscardSeats[0] == seat
}

// VerifyDiscard checks that discards is a subset of seat's hole cards.
func (s *State) VerifyDiscard(seat int, discards []card.Card) error {
	if !s.CanDiscard(seat) {
		return actionErrorf("seat %d has no pending discard decision", seat)
	}
	hole := append([]card.Card{}, s.holeCards[seat]...)
	for _, d := range discards {
		found := false
		for i, h := range hole {
			if h.Equal(d) {
				hole = append(hole[:i], hole[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return actionErrorf("seat %d: discard %s is not a hole card", seat, d)
		}
	}
	return nil
}

// Discard removes discards from seat's hole cards (or stands pat if
// empty), queues that many replacement cards, and advances the discard
// queue.
func (s *State) Discard(seat int, discards []card.Card) (Event, error) {
	if err := s.VerifyDiscard(seat, discards); err != nil {
		return Event{}, err
	}
	for _, d := range discards {
		for i, h := range s.holeCards[seat] {
			if h.Equal(d) {
				s.holeCards[seat] = append(s.holeCards[seat][:i], s.holeCards[seat][i+1:]...)
				s.holeFaceUp[seat] = append(s.holeFaceUp[seat][:i], s.holeFaceUp[seat][i+1:]...)
				s.muckedCards = append(s.muckedCards, d)
				break
			}
		}
	}
	s.pendingDiscardSeats = s.pendingDiscardSeats[1:]
	kind := EventDiscarded
	if len(discards) == 0 {
		kind = EventStoodPat
	} else {
		s.pendingReplacement[seat] = len(discards)
	}
	if len(s.pendingDiscardSeats) == 0 {
		s.queueReplacementDealing()
	}
	return s.emit(Event{Kind: kind, Seat: seat, Cards: discards}), nil
}

func (s *State) queueReplacementDealing() {
	s.replacementDealing = true
	s.pendingBurn = s.currentStreet().BurnBeforeDeal && len(s.pendingReplacement) > 0
	s.pendingHole = nil
	for _, seat := range s.dealOrder() {
		for i := 0; i < s.pendingReplacement[seat]; i++ {
			s.pendingHole = append(s.pendingHole, holeDealSlot{seat: seat, faceUp: false})
		}
	}
	s.phase = PhaseDealing
	s.tryAdvanceDealing()
}
