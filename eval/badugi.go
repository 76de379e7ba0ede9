package eval

import (
	"sort"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/lookup"
)

// bestBadugi greedily admits cards in ascending rank-order position,
// skipping any card that repeats a rank or suit already admitted (§4.2).
// Cards that share a rank are visited in the order sort.Slice leaves them,
// which is not defined, so when hole cards repeat a rank the suit admitted
// for that rank (and with it which later cards still fit) is not defined
// either.
func (e Evaluator) bestBadugi(hole []card.Card) (*Hand, error) {
	if len(hole) == 0 {
		return nil, lookup.ErrInvalidHand
	}
	sorted := append([]card.Card{}, hole...)
	sort.Slice(sorted, func(i, j int) bool {
		return e.Order.Position(sorted[i].Rank) < e.Order.Position(sorted[j].Rank)
	})

	var admitted []card.Card
	seenRank := map[card.Rank]bool{}
	seenSuit := map[card.Suit]bool{}
	for _, c := range sorted {
		if seenRank[c.Rank] || seenSuit[c.Suit] {
			continue
		}
		seenRank[c.Rank] = true
		seenSuit[c.Suit] = true
		admitted = append(admitted, c)
	}
	if len(admitted) == 0 {
		return nil, lookup.ErrInvalidHand
	}
	return e.evalCombo(admitted)
}
