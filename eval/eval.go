// Package eval implements the L2 hand evaluators of §4.2: given a
// player's hole cards and the board, produce the strongest legal hand
// under one variant's composition rules.
package eval

import (
	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/lookup"
)

// Family selects which composition rule (§4.2) an Evaluator applies.
type Family uint8

const (
	// AnyFive chooses any 5 cards from hole ∪ board.
	AnyFive Family = iota
	// Greek fixes all hole cards and chooses 3 of 5 board cards.
	Greek
	// Omaha chooses exactly 2 hole cards and 3 board cards.
	Omaha
	// Badugi greedily selects a distinct-rank, distinct-suit subset.
	Badugi
	// Kuhn uses the single hole card with no board.
	Kuhn
	// Partial evaluates an up-card multiset of 1-4 cards directly, with
	// no combination selection, for the LowestUpHand/HighestUpHand
	// opening rule (§4.5).
	Partial
)

// Hand wraps the exact cards that scored an Evaluator's best result,
// plus the resulting lookup entry (§4.2).
type Hand struct {
	Cards []card.Card
	Entry lookup.HandEntry
}

// Evaluator exposes BestHand, the one operation every variant's hand
// evaluator needs. High selects high/low comparison semantics — the only
// place that distinction exists, per §4.1's final paragraph.
type Evaluator struct {
	Name   string
	Order  lookup.RankOrder
	Table  *lookup.Lookup
	High   bool
	Family Family
}

// Better reports whether a beats b under e's high/low mode. Equal
// strength hands report false for both Better(a,b) and Better(b,a) — a
// strict weak order, per §8 property 4.
func (e Evaluator) Better(a, b Hand) bool {
	if e.High {
		return a.Entry.Index > b.Entry.Index
	}
	return a.Entry.Index < b.Entry.Index
}

// BestHand returns the strongest hand obtainable from hole and board
// cards under e's composition family, or nil if no legal combination
// exists (e.g. an eight-or-better evaluator with no qualifying low, or a
// Badugi evaluator that cannot find even one valid card).
func (e Evaluator) BestHand(hole, board []card.Card) (*Hand, error) {
	switch e.Family {
	case Greek:
		return e.bestGreek(hole, board)
	case Omaha:
		return e.bestOmaha(hole, board)
	case Badugi:
		return e.bestBadugi(hole)
	case Kuhn:
		return e.bestKuhn(hole)
	case Partial:
		return e.evalCombo(hole)
	default:
		return e.bestAnyFive(append(append([]card.Card{}, hole...), board...))
	}
}

func (e Evaluator) evalCombo(cards []card.Card) (*Hand, error) {
	ranks := make([]card.Rank, len(cards))
	suited := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if i > 0 && c.Suit != cards[0].Suit {
			suited = false
		}
	}
	entry, err := e.Table.Get(ranks, suited)
	if err != nil {
		return nil, err
	}
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return &Hand{Cards: out, Entry: entry}, nil
}

func (e Evaluator) bestOf(candidates [][]card.Card) (*Hand, error) {
	var best *Hand
	for _, combo := range candidates {
		h, err := e.evalCombo(combo)
		if err != nil {
			continue
		}
		if best == nil || e.Better(*h, *best) {
			best = h
		}
	}
	if best == nil {
		return nil, lookup.ErrInvalidHand
	}
	return best, nil
}

func (e Evaluator) bestAnyFive(cards []card.Card) (*Hand, error) {
	if len(cards) < 5 {
		return nil, lookup.ErrInvalidHand
	}
	var candidates [][]card.Card
	for _, combo := range choose(len(cards), 5) {
		candidates = append(candidates, pick(cards, combo))
	}
	return e.bestOf(candidates)
}

func (e Evaluator) bestGreek(hole, board []card.Card) (*Hand, error) {
	if len(board) < 3 {
		return nil, lookup.ErrInvalidHand
	}
	var candidates [][]card.Card
	for _, combo := range choose(len(board), 3) {
		boardPart := pick(board, combo)
		candidates = append(candidates, append(append([]card.Card{}, hole...), boardPart...))
	}
	return e.bestOf(candidates)
}

func (e Evaluator) bestOmaha(hole, board []card.Card) (*Hand, error) {
	if len(hole) < 2 || len(board) < 3 {
		return nil, lookup.ErrInvalidHand
	}
	var candidates [][]card.Card
	for _, hc := range choose(len(hole), 2) {
		holePart := pick(hole, hc)
		for _, bc := range choose(len(board), 3) {
			boardPart := pick(board, bc)
			candidates = append(candidates, append(append([]card.Card{}, holePart...), boardPart...))
		}
	}
	return e.bestOf(candidates)
}

func (e Evaluator) bestKuhn(hole []card.Card) (*Hand, error) {
	if len(hole) != 1 {
		return nil, lookup.ErrInvalidHand
	}
	return e.evalCombo(hole)
}

// choose returns every k-combination of indices [0,n).
func choose(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

func pick(cards []card.Card, indices []int) []card.Card {
	out := make([]card.Card, len(indices))
	for i, idx := range indices {
		out[i] = cards[idx]
	}
	return out
}
