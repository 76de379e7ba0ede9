// Package preset assembles poker.Config values for a fixed menu of named
// variants. It holds no behavior of its own: every Street, Evaluator, and
// Deck it wires together comes straight from eval/poker. Used by tests and
// cmd/handreplay, never by the poker package itself.
package preset

import (
	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/lox/pokerengine/poker"
)

func intp(v int) *int { return &v }

func uniform(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// blindSeats mirrors poker.blindPostOrder's heads-up-vs-3+ split: heads-up
// the button itself posts the small blind, otherwise the small and big
// blind fall on the two seats following the button.
func blindSeats(n, buttonSeat int) (sb, bb int) {
	if n == 2 {
		return buttonSeat % n, (buttonSeat + 1) % n
	}
	return (buttonSeat + 1) % n, (buttonSeat + 2) % n
}

// TexasHoldem builds a no-limit hold'em Config: 2 hole cards, flop/turn/
// river community deal, blinds-driven opening on every street.
func TexasHoldem(stacks []int, antes []int, smallBlind, bigBlind, buttonSeat int) poker.Config {
	n := len(stacks)
	forced := make([]int, n)
	sb, bb := blindSeats(n, buttonSeat)
	forced[sb] = smallBlind
	forced[bb] = bigBlind
	return poker.Config{
		HandTypes: []eval.Evaluator{eval.StandardHighEvaluator()},
		Streets: []poker.Street{
			{Name: "preflop", HoleDealStatuses: []bool{false, false}, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "flop", BurnBeforeDeal: true, BoardDealCount: 3, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "turn", BurnBeforeDeal: true, BoardDealCount: 1, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "river", BurnBeforeDeal: true, BoardDealCount: 1, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
		},
		Structure:      poker.NoLimit,
		Antes:          antes,
		ForcedBets:     forced,
		StartingStacks: stacks,
		ButtonSeat:     buttonSeat,
		Deck:           card.NewStandardDeck(),
	}
}

// ShortDeckHoldem is TexasHoldem over the 6-plus deck with the reordered
// short-deck category table (flush beats full house) and a button ante in
// addition to the uniform ante.
func ShortDeckHoldem(stacks []int, ante, buttonAnte, smallBlind, bigBlind, buttonSeat int) poker.Config {
	n := len(stacks)
	antes := uniform(n, ante)
	antes[buttonSeat%n] += buttonAnte
	cfg := TexasHoldem(stacks, antes, smallBlind, bigBlind, buttonSeat)
	cfg.HandTypes = []eval.Evaluator{eval.ShortDeckHighEvaluator()}
	cfg.Deck = card.NewShortDeck()
	return cfg
}

// Omaha builds a pot-limit Omaha Config: 4 hole cards, 2-of-4/3-of-5
// composition.
func Omaha(stacks []int, smallBlind, bigBlind, buttonSeat int) poker.Config {
	n := len(stacks)
	forced := make([]int, n)
	sb, bb := blindSeats(n, buttonSeat)
	forced[sb] = smallBlind
	forced[bb] = bigBlind
	return poker.Config{
		HandTypes: []eval.Evaluator{eval.OmahaHighEvaluator()},
		Streets: []poker.Street{
			{Name: "preflop", HoleDealStatuses: []bool{false, false, false, false}, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "flop", BurnBeforeDeal: true, BoardDealCount: 3, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "turn", BurnBeforeDeal: true, BoardDealCount: 1, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
			{Name: "river", BurnBeforeDeal: true, BoardDealCount: 1, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: bigBlind},
		},
		Structure:      poker.PotLimit,
		Antes:          make([]int, n),
		ForcedBets:     forced,
		StartingStacks: stacks,
		ButtonSeat:     buttonSeat,
		Deck:           card.NewStandardDeck(),
	}
}

// OmahaHiLo is Omaha split between the standard high hand and the
// eight-or-better qualifying low.
func OmahaHiLo(stacks []int, smallBlind, bigBlind, buttonSeat int) poker.Config {
	cfg := Omaha(stacks, smallBlind, bigBlind, buttonSeat)
	cfg.HandTypes = []eval.Evaluator{eval.OmahaHighEvaluator(), eval.EightOrBetterLowEvaluator(eval.Omaha)}
	return cfg
}

// studStreets builds the classic 3rd-through-7th-street layout shared by
// Seven Card Stud and Razz, differing only in which side of the up-card
// comparison opens each round.
func studStreets(smallBet, bigBet int, thirdStreetOpening, laterOpening poker.Opening) []poker.Street {
	return []poker.Street{
		{Name: "third", HoleDealStatuses: []bool{false, false, true}, Opening: thirdStreetOpening, MinRaise: smallBet},
		{Name: "fourth", HoleDealStatuses: []bool{true}, Opening: laterOpening, MinRaise: smallBet},
		{Name: "fifth", HoleDealStatuses: []bool{true}, Opening: laterOpening, MinRaise: bigBet},
		{Name: "sixth", HoleDealStatuses: []bool{true}, Opening: laterOpening, MinRaise: bigBet},
		{Name: "seventh", HoleDealStatuses: []bool{false}, Opening: laterOpening, MinRaise: bigBet},
	}
}

// SevenCardStud builds a fixed-limit seven-card stud Config: uniform
// antes, bring-in posted by the lowest third-street up card, later streets
// opening on the best up hand.
func SevenCardStud(stacks []int, ante, bringIn, smallBet, bigBet, buttonSeat int) poker.Config {
	n := len(stacks)
	return poker.Config{
		HandTypes:      []eval.Evaluator{eval.StandardHighEvaluator()},
		Streets:        studStreets(smallBet, bigBet, poker.LowestUpCard, poker.HighestUpHand),
		Structure:      poker.FixedLimit,
		Antes:          uniform(n, ante),
		BringIn:        bringIn,
		StartingStacks: stacks,
		ButtonSeat:     buttonSeat,
		Deck:           card.NewStandardDeck(),
	}
}

// Razz is seven-card stud played for the ace-to-five low: the highest
// up card brings in, and later streets open on the weakest up hand.
func Razz(stacks []int, ante, bringIn, smallBet, bigBet, buttonSeat int) poker.Config {
	cfg := SevenCardStud(stacks, ante, bringIn, smallBet, bigBet, buttonSeat)
	cfg.HandTypes = []eval.Evaluator{eval.RazzLowEvaluator()}
	cfg.Streets = studStreets(smallBet, bigBet, poker.HighestUpCard, poker.LowestUpHand)
	return cfg
}

// drawStreets builds an initial deal street plus drawCount subsequent
// draw-and-bet streets, small bet for the first half and big bet for the
// second, the layout Badugi and 2-to-7 triple draw share.
func drawStreets(holeCards, drawCount, smallBet, bigBet int) []poker.Street {
	holeStatuses := make([]bool, holeCards)
	streets := []poker.Street{
		{Name: "deal", HoleDealStatuses: holeStatuses, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: smallBet},
	}
	for i := 0; i < drawCount; i++ {
		minRaise := smallBet
		if i >= (drawCount+1)/2 {
			minRaise = bigBet
		}
		streets = append(streets, poker.Street{Name: "draw", DrawPhase: true, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: minRaise})
	}
	return streets
}

// Badugi builds a fixed-limit Badugi Config: 4 hole cards, 3 draw rounds,
// the greedy distinct-rank/suit low evaluator.
func Badugi(stacks []int, smallBlind, bigBlind, smallBet, bigBet, buttonSeat int) poker.Config {
	n := len(stacks)
	forced := make([]int, n)
	sb, bb := blindSeats(n, buttonSeat)
	forced[sb] = smallBlind
	forced[bb] = bigBlind
	return poker.Config{
		HandTypes:      []eval.Evaluator{eval.BadugiEvaluator()},
		Streets:        drawStreets(4, 3, smallBet, bigBet),
		Structure:      poker.FixedLimit,
		Antes:          make([]int, n),
		ForcedBets:     forced,
		StartingStacks: stacks,
		ButtonSeat:     buttonSeat,
		Deck:           card.NewStandardDeck(),
	}
}

// TripleDraw builds a fixed-limit 2-to-7 triple draw Config: 5 hole cards,
// 3 draw rounds, straights and flushes counting against the low hand.
func TripleDraw(stacks []int, smallBlind, bigBlind, smallBet, bigBet, buttonSeat int) poker.Config {
	cfg := Badugi(stacks, smallBlind, bigBlind, smallBet, bigBet, buttonSeat)
	cfg.HandTypes = []eval.Evaluator{eval.TripleDrawLowEvaluator()}
	cfg.Streets = drawStreets(5, 3, smallBet, bigBet)
	return cfg
}

// Kuhn builds the 3-card, single-street toy game: antes only, one hidden
// hole card, opening after the button.
func Kuhn(stacks []int, ante, minBet, buttonSeat int) poker.Config {
	n := len(stacks)
	return poker.Config{
		HandTypes: []eval.Evaluator{eval.KuhnEvaluator()},
		Streets: []poker.Street{
			{Name: "deal", HoleDealStatuses: []bool{false}, Opening: poker.FirstVoluntaryAfterBlinds, MinRaise: minBet, MaxRaiseCount: intp(1)},
		},
		Structure:      poker.FixedLimit,
		Antes:          uniform(n, ante),
		StartingStacks: stacks,
		ButtonSeat:     buttonSeat,
		Deck:           card.NewKuhnDeck(),
	}
}
