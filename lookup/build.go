package lookup

import (
	"sort"

	"github.com/lox/pokerengine/card"
)

func toCardRanks(order RankOrder, positions []int) []card.Rank {
	out := make([]card.Rank, len(positions))
	for i, p := range positions {
		out[i] = order.Ranks[p]
	}
	return out
}

func toCardRanksBatch(order RankOrder, combos []groupCombo) [][]card.Rank {
	out := make([][]card.Rank, len(combos))
	for i, c := range combos {
		out[i] = toCardRanks(order, c.ranks)
	}
	return out
}

// straightWindows returns every consecutive 5-rank window, weakest first,
// with the wheel (ace-low straight, §3 "Wheel") inserted as the weakest
// of all: A-2-3-4-5 under Standard, A-6-7-8-9 under ShortDeck (§4.1 step
// 2's "wrap the top rank around to the bottom").
func straightWindows(order RankOrder) []groupCombo {
	n := len(order.Ranks)
	var combos []groupCombo

	// Wheel: the bottom four non-ace ranks plus ace, sorted as the
	// weakest straight by giving ace a sentinel key below rank position 0.
	wheel := groupCombo{
		ranks: []int{0, 1, 2, 3, n - 1},
		key:   []int{3, 2, 1, 0, -1},
	}
	combos = append(combos, wheel)

	for start := 0; start <= n-5; start++ {
		positions := []int{start, start + 1, start + 2, start + 3, start + 4}
		combos = append(combos, groupCombo{
			ranks: positions,
			key:   []int{start + 4, start + 3, start + 2, start + 1, start},
		})
	}

	sort.Slice(combos, func(i, j int) bool { return lessKey(combos[i].key, combos[j].key) })
	return combos
}

// nonStraightDistinctRanks returns every 5-distinct-rank combination that
// is NOT a straight (normal or wheel) shape — the domain shared by the
// high-card and flush categories, which a prior straight/straight-flush
// pass has already claimed.
func nonStraightDistinctRanks(order RankOrder) []groupCombo {
	n := len(order.Ranks)
	all := genGroups(n, []int{1, 1, 1, 1, 1})
	var out []groupCombo
	for _, c := range all {
		sorted := append([]int{}, c.ranks...)
		sort.Ints(sorted)
		if isConsecutiveRun(sorted) {
			continue
		}
		if len(sorted) == 5 && sorted[0] == 0 && sorted[1] == 1 && sorted[2] == 2 && sorted[3] == 3 && sorted[4] == n-1 {
			continue // wheel shape, claimed by straight/straight-flush
		}
		out = append(out, c)
	}
	return out
}

// BuildAnyFiveHigh builds a 9-category any-5 high lookup over order.
// flushBeforeFullHouse selects the standard category order (flush weaker
// than full house) when true, or the short-deck reordering (full house
// weaker than flush, per §8 testable property 5) when false.
func BuildAnyFiveHigh(order RankOrder, flushBeforeFullHouse bool) *Lookup {
	b := newBuilder(order)
	n := len(order.Ranks)

	b.add(HighCard, toCardRanksBatch(order, nonStraightDistinctRanks(order)), false)
	b.add(OnePair, toCardRanksBatch(order, genGroups(n, []int{2, 1, 1, 1})), false)
	b.add(TwoPair, toCardRanksBatch(order, genGroups(n, []int{2, 2, 1})), false)
	b.add(ThreeOfAKind, toCardRanksBatch(order, genGroups(n, []int{3, 1, 1})), false)
	b.add(Straight, toCardRanksBatch(order, straightWindows(order)), false)

	flush := func() { b.add(Flush, toCardRanksBatch(order, nonStraightDistinctRanks(order)), true) }
	fullHouse := func() { b.add(FullHouse, toCardRanksBatch(order, genGroups(n, []int{3, 2})), false) }
	if flushBeforeFullHouse {
		flush()
		fullHouse()
	} else {
		fullHouse()
		flush()
	}

	b.add(FourOfAKind, toCardRanksBatch(order, genGroups(n, []int{4, 1})), false)
	b.add(StraightFlush, toCardRanksBatch(order, straightWindows(order)), true)

	return b.build()
}

// BuildRegularLow builds the ace-to-five/Razz lookup (§4.1): every
// non-flush category over ace-low ordering, suits ignored entirely.
func BuildRegularLow(order RankOrder) *Lookup {
	b := newBuilder(order)
	n := len(order.Ranks)

	b.addBoth(HighCard, toCardRanksBatch(order, nonStraightDistinctRanks(order)))
	b.addBoth(OnePair, toCardRanksBatch(order, genGroups(n, []int{2, 1, 1, 1})))
	b.addBoth(TwoPair, toCardRanksBatch(order, genGroups(n, []int{2, 2, 1})))
	b.addBoth(ThreeOfAKind, toCardRanksBatch(order, genGroups(n, []int{3, 1, 1})))
	b.addBoth(Straight, toCardRanksBatch(order, straightWindows(order)))
	b.addBoth(FullHouse, toCardRanksBatch(order, genGroups(n, []int{3, 2})))
	b.addBoth(FourOfAKind, toCardRanksBatch(order, genGroups(n, []int{4, 1})))

	return b.build()
}

// BuildEightOrBetterLow builds the eight-or-better low lookup: high-card
// entries only, ace-to-eight ordering, suits ignored (§4.1).
func BuildEightOrBetterLow(order RankOrder) *Lookup {
	b := newBuilder(order)
	n := len(order.Ranks)
	b.addBoth(HighCard, toCardRanksBatch(order, genGroups(n, []int{1, 1, 1, 1, 1})))
	return b.build()
}

// BuildBadugi builds the Badugi lookup: high-card-labelled entries for
// 1-to-4-card multisets, longer beats shorter, equal length compares
// low-to-high by rank-tuple (§4.1). Suits are ignored by the lookup
// itself — the eval package's Badugi composition rule is what guarantees
// every multiset it ever queries is already suit-distinct.
func BuildBadugi(order RankOrder) *Lookup {
	b := newBuilder(order)
	n := len(order.Ranks)
	for length := 1; length <= 4; length++ {
		profile := make([]int, length)
		for i := range profile {
			profile[i] = 1
		}
		combos := genGroups(n, profile)
		// Badugi wants LOWER ranks to be stronger, the opposite of the
		// ascending-rank-position convention genGroups already sorts by,
		// so reverse within this length before assigning indices, and
		// assign longer lengths strictly after every shorter length.
		for i, j := 0, len(combos)-1; i < j; i, j = i+1, j-1 {
			combos[i], combos[j] = combos[j], combos[i]
		}
		b.addBoth(HighCard, toCardRanksBatch(order, combos))
	}
	return b.build()
}

// BuildPartial builds a lookup over 1-to-4-card up-card multisets, used
// to resolve the LowestUpHand/HighestUpHand stud opening rule (§4.5). It
// is built once per rank order, weakest-to-strongest exactly like every
// other lookup; callers wanting "lowest up hand wins" wrap it in an
// Evaluator with High=false, and "highest up hand wins" with High=true —
// the same high/low inversion used everywhere else in this package.
// Only grouped (non-straight, non-flush) categories apply since a
// partial hand can never reach five cards.
func BuildPartial(order RankOrder) *Lookup {
	b := newBuilder(order)
	n := len(order.Ranks)

	profiles := [][]int{
		{1},
		{1, 1}, {2},
		{1, 1, 1}, {2, 1}, {3},
		{1, 1, 1, 1}, {2, 1, 1}, {2, 2}, {3, 1}, {4},
	}
	for _, p := range profiles {
		combos := genGroups(n, p)
		label := HighCard
		switch {
		case len(p) == 2 && p[0] == 2 && p[1] == 2:
			label = TwoPair
		case p[0] >= 2:
			label = labelFor(p[0])
		}
		b.addBoth(label, toCardRanksBatch(order, combos))
	}
	return b.build()
}

func labelFor(groupSize int) Category {
	switch groupSize {
	case 2:
		return OnePair
	case 3:
		return ThreeOfAKind
	case 4:
		return FourOfAKind
	default:
		return HighCard
	}
}
