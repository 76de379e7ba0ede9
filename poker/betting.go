package poker

import (
	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/lox/pokerengine/lookup"
)

func (s *State) maxBet() int {
	max := 0
	for i := 0; i < s.numSeats; i++ {
		if s.statuses[i] && s.bets[i] > max {
			max = s.bets[i]
		}
	}
	return max
}

func (s *State) upCards(seat int) []card.Card {
	var up []card.Card
	for i, c := range s.holeCards[seat] {
		if s.holeFaceUp[seat][i] {
			up = append(up, c)
		}
	}
	return up
}

// determineOpener applies the current street's Opening rule over alive
// seats (§4.5 "Opening rules").
func (s *State) determineOpener() int {
	switch s.currentStreet().Opening {
	case LowestUpCard, HighestUpCard:
		return s.openerByUpCard(s.currentStreet().Opening == HighestUpCard)
	case LowestUpHand, HighestUpHand:
		return s.openerByUpHand(s.currentStreet().Opening == HighestUpHand)
	default:
		return s.openerAfterMaxBet()
	}
}

// openerAfterMaxBet implements the FirstVoluntaryAfterBlinds rule: on
// street 1, the seat after whichever seat posted the largest forced bet
// (the big blind, in flop games); on later streets, the seat after the
// button regardless of current bets (§4.5).
func (s *State) openerAfterMaxBet() int {
	base := s.buttonSeat
	if s.streetIndex == 0 {
		if seat, ok := s.biggestForcedBetSeat(); ok {
			base = seat
		}
	}
	for i := 1; i <= s.numSeats; i++ {
		seat := (base + i) % s.numSeats
		if s.statuses[seat] {
			return seat
		}
	}
	return base
}

func (s *State) biggestForcedBetSeat() (int, bool) {
	best, bestSeat, found := -1, -1, false
	for i := 0; i < len(s.forcedBets); i++ {
		if s.forcedBets[i] > 0 && s.forcedBets[i] >= best {
			best = s.forcedBets[i]
			bestSeat = i
			found = true
		}
	}
	return bestSeat, found
}

func (s *State) openerByUpCard(high bool) int {
	order := lookup.Standard
	best := -1
	var bestRank card.Rank
	var bestSuit card.Suit
	for i := 0; i < s.numSeats; i++ {
		if !s.statuses[i] {
			continue
		}
		up := s.upCards(i)
		if len(up) == 0 {
			continue
		}
		r, suit := up[0].Rank, up[0].Suit
		if best == -1 {
			best, bestRank, bestSuit = i, r, suit
			continue
		}
		better := order.Position(r) < order.Position(bestRank) ||
			(r == bestRank && suit < bestSuit)
		if high {
			better = order.Position(r) > order.Position(bestRank) ||
				(r == bestRank && suit > bestSuit)
		}
		if better {
			best, bestRank, bestSuit = i, r, suit
		}
	}
	if best == -1 {
		return s.openerAfterMaxBet()
	}
	return best
}

func (s *State) openerByUpHand(high bool) int {
	e := eval.PartialLowEvaluator()
	if high {
		e = eval.PartialHighEvaluator()
	}
	best := -1
	var bestHand eval.Hand
	for i := 0; i < s.numSeats; i++ {
		if !s.statuses[i] {
			continue
		}
		up := s.upCards(i)
		if len(up) == 0 {
			continue
		}
		hand, err := e.BestHand(up, nil)
		if err != nil {
			continue
		}
		if best == -1 || e.Better(*hand, bestHand) {
			best, bestHand = i, *hand
		}
	}
	if best == -1 {
		return s.openerAfterMaxBet()
	}
	return best
}

func (s *State) beginBettingRound() {
	s.openerIndex = s.determineOpener()
	s.lastRaiseSize = s.currentStreet().MinRaise
	s.raiseCount = 0
	s.bringInPending = s.streetIndex == 0 && s.bringIn > 0
	s.completionPending = false
	s.rebuildActorQueue(s.openerIndex)
	if len(s.actorQueue) == 0 || s.aliveWithChips2OrMore() == false {
		s.endBettingRound()
	}
}

// aliveWithChips2OrMore reports whether at least two alive players still
// have chips, i.e. further betting is possible (§4.5 "Round termination").
func (s *State) aliveWithChips2OrMore() bool {
	return len(s.aliveWithChips()) >= 2
}

func (s *State) rebuildActorQueue(from int) {
	s.rebuildActorQueueExcluding(from, -1)
}

// rebuildActorQueueExcluding builds the queue of alive, chipped seats
// starting at from and cycling through every other seat, omitting exclude.
// A raiser must never reappear in its own post-raise queue (pokerkit
// state.py:3283-3292 pops the raiser off right after rotating it to the
// front) — otherwise the round would demand one more no-op action from the
// raiser before closing.
func (s *State) rebuildActorQueueExcluding(from, exclude int) {
	var q []int
	for i := 0; i < s.numSeats; i++ {
		seat := (from + i) % s.numSeats
		if seat == exclude {
			continue
		}
		if s.statuses[seat] && s.stacks[seat] > 0 {
			q = append(q, seat)
		}
	}
	s.actorQueue = q
}

// CurrentActor returns the seat on turn, or -1 if none is pending.
func (s *State) CurrentActor() int {
	if s.phase != PhaseBetting || len(s.actorQueue) == 0 {
		return -1
	}
	return s.actorQueue[0]
}

func (s *State) popActor() {
	if len(s.actorQueue) > 0 {
		s.actorQueue = s.actorQueue[1:]
	}
	if len(s.actorQueue) == 0 || s.aliveCount() <= 1 || !s.aliveWithChips2OrMore() {
		s.endBettingRound()
	}
}

func (s *State) endBettingRound() {
	s.actorQueue = nil
	s.phase = PhaseBetCollection
	s.pendingBetCollect = true
}

// CanFold reports whether seat may fold right now.
func (s *State) CanFold(seat int) bool {
	if s.phase != PhaseBetting || s.CurrentActor() != seat || s.bringInPending {
		return false
	}
	return s.bets[seat] < s.maxBet()
}

// VerifyFold checks §4.5's fold preconditions: folding is disallowed when
// checking is free (a degenerate error, §7).
func (s *State) VerifyFold(seat int) error {
	if s.phase != PhaseBetting || s.CurrentActor() != seat {
		return actionErrorf("seat %d is not on turn", seat)
	}
	if s.bringInPending {
		return actionErrorf("seat %d: bring-in must be posted before folding", seat)
	}
	if s.bets[seat] >= s.maxBet() {
		return actionErrorf("seat %d: cannot fold when checking is free", seat)
	}
	return nil
}

// Fold sets seat's status to false and mucks its hole cards.
func (s *State) Fold(seat int) (Event, error) {
	if err := s.VerifyFold(seat); err != nil {
		return Event{}, err
	}
	s.statuses[seat] = false
	s.muckedCards = append(s.muckedCards, s.holeCards[seat]...)
	s.holeCards[seat] = nil
	s.holeFaceUp[seat] = nil
	s.popActor()
	return s.emit(Event{Kind: EventFolded, Seat: seat}), nil
}

// VerifyCheckOrCall checks that seat is on turn and no bring-in is
// pending.
func (s *State) VerifyCheckOrCall(seat int) error {
	if s.phase != PhaseBetting || s.CurrentActor() != seat {
		return actionErrorf("seat %d is not on turn", seat)
	}
	if s.bringInPending {
		return actionErrorf("seat %d: bring-in must be posted before check or call", seat)
	}
	return nil
}

// CheckOrCall pays the difference between the table's max bet and seat's
// current bet, clamped to seat's stack.
func (s *State) CheckOrCall(seat int) (Event, error) {
	if err := s.VerifyCheckOrCall(seat); err != nil {
		return Event{}, err
	}
	amount := s.maxBet() - s.bets[seat]
	if amount > s.stacks[seat] {
		amount = s.stacks[seat]
	}
	if amount < 0 {
		amount = 0
	}
	s.stacks[seat] -= amount
	s.bets[seat] += amount
	s.popActor()
	return s.emit(Event{Kind: EventCheckedOrCalled, Seat: seat, Amount: amount}), nil
}

// VerifyPostBringIn checks that seat is the opener with bring-in pending.
func (s *State) VerifyPostBringIn(seat int) error {
	if s.phase != PhaseBetting || !s.bringInPending || s.CurrentActor() != seat {
		return actionErrorf("seat %d has no pending bring-in", seat)
	}
	return nil
}

// PostBringIn pays the stud bring-in, clamped to seat's stack.
func (s *State) PostBringIn(seat int) (Event, error) {
	if err := s.VerifyPostBringIn(seat); err != nil {
		return Event{}, err
	}
	amount := s.bringIn
	if amount > s.stacks[seat] {
		amount = s.stacks[seat]
	}
	s.stacks[seat] -= amount
	s.bets[seat] += amount
	s.bringInPending = false
	s.completionPending = true
	s.popActor()
	return s.emit(Event{Kind: EventBringInPosted, Seat: seat, Amount: amount}), nil
}

// totalPotAmount is every chip already collected into pot bookkeeping plus
// every seat's current street bet (pokerkit state.py:1112, "this value also
// includes the bets").
func (s *State) totalPotAmount() int {
	total := s.TotalPot()
	for i := 0; i < s.numSeats; i++ {
		total += s.bets[i]
	}
	return total
}

// minRaiseTo computes §4.5's minimum raise-to amount. While a stud
// bring-in completion is still pending, the minimum is the street's
// min_raise directly rather than min_raise stacked on top of the bring-in
// (pokerkit state.py:3101-3116, gated on completion_status).
func (s *State) minRaiseTo(seat int) int {
	var min int
	if s.completionPending {
		min = s.currentStreet().MinRaise
	} else {
		maxBet := s.maxBet()
		min = maxBet
		if v := s.lastRaiseSize + maxBet; v > min {
			min = v
		}
	}
	if ceiling := s.effectiveStack(seat); ceiling < min {
		min = ceiling
	}
	return min
}

// maxRaiseTo computes §4.5's maximum raise-to amount for s.structure. Per
// pokerkit (state.py:3135-3167), the ceiling is always clamped against the
// seat's own total stack, never an opponent's — effectiveStack only ever
// bounds the minimum (§9 supplemented feature 2).
func (s *State) maxRaiseTo(seat int) int {
	own := s.stacks[seat] + s.bets[seat]
	switch s.structure {
	case FixedLimit:
		return s.minRaiseTo(seat)
	case PotLimit:
		amount := 2*s.maxBet() - s.bets[seat] + s.totalPotAmount()
		if min := s.minRaiseTo(seat); min > amount {
			amount = min
		}
		if amount > own {
			return own
		}
		return amount
	default: // NoLimit
		return own
	}
}

// VerifyCompleteBetOrRaiseTo validates amount against the min/max
// raise-to bounds and the fixed-limit raise cap.
func (s *State) VerifyCompleteBetOrRaiseTo(seat int, amount int) error {
	if s.phase != PhaseBetting || s.CurrentActor() != seat {
		return actionErrorf("seat %d is not on turn", seat)
	}
	street := s.currentStreet()
	if street.MaxRaiseCount != nil && s.raiseCount >= *street.MaxRaiseCount {
		return actionErrorf("seat %d: raise cap of %d already reached", seat, *street.MaxRaiseCount)
	}
	min, max := s.minRaiseTo(seat), s.maxRaiseTo(seat)
	if amount < min {
		return actionErrorf("seat %d: %d is below the minimum raise-to amount %d", seat, amount, min)
	}
	if amount > max {
		return actionErrorf("seat %d: %d exceeds the maximum raise-to amount %d", seat, amount, max)
	}
	return nil
}

// CompleteBetOrRaiseTo raises seat's total street bet to amount, resets
// the actor queue to every other alive seat with chips, and counts as a
// raise (completing a stud bring-in counts as the first raise, §9
// supplemented feature 4).
func (s *State) CompleteBetOrRaiseTo(seat int, amount int) (Event, error) {
	if err := s.VerifyCompleteBetOrRaiseTo(seat, amount); err != nil {
		return Event{}, err
	}
	delta := amount - s.bets[seat]
	if delta > s.stacks[seat] {
		delta = s.stacks[seat]
	}
	increment := amount - s.maxBet()
	s.stacks[seat] -= delta
	s.bets[seat] += delta
	if increment > 0 {
		s.lastRaiseSize = increment
	}
	s.raiseCount++
	s.bringInPending = false
	s.completionPending = false
	s.rebuildActorQueueExcluding((seat+1)%s.numSeats, seat)
	if len(s.actorQueue) == 0 {
		s.endBettingRound()
	}
	return s.emit(Event{Kind: EventRaisedTo, Seat: seat, Amount: amount}), nil
}
