package lookup

import "github.com/lox/pokerengine/card"

// RankOrder is a totally ordered tuple of ranks used by one evaluator
// (§3). Ranks[0] is the weakest rank in this order, Ranks[len-1] the
// strongest; prime assignment and strength comparisons are both driven by
// position within this slice.
type RankOrder struct {
	Name  string
	Ranks []card.Rank
}

// Position returns r's index within the order, or -1 if r does not
// participate in it (e.g. a 9 under eight-or-better-low ordering).
func (o RankOrder) Position(r card.Rank) int {
	for i, rr := range o.Ranks {
		if rr == r {
			return i
		}
	}
	return -1
}

// Standard is the ordinary 2-through-ace ordering used by hold'em, Omaha,
// stud and draw high games.
var Standard = RankOrder{
	Name: "standard",
	Ranks: []card.Rank{
		card.RankTwo, card.RankThree, card.RankFour, card.RankFive, card.RankSix,
		card.RankSeven, card.RankEight, card.RankNine, card.RankTen,
		card.RankJack, card.RankQueen, card.RankKing, card.RankAce,
	},
}

// ShortDeck is the 6-through-ace ordering used by short-deck hold'em.
var ShortDeck = RankOrder{
	Name: "short-deck",
	Ranks: []card.Rank{
		card.RankSix, card.RankSeven, card.RankEight, card.RankNine, card.RankTen,
		card.RankJack, card.RankQueen, card.RankKing, card.RankAce,
	},
}

// RegularLow is the ace-low ordering (A weakest position, king strongest
// position) used by ace-to-five lowball, Razz and Badugi. Weakest
// position here means "most desirable as a low card," not "worst hand":
// position still drives prime assignment and, for Badugi, the strength
// comparison directly.
var RegularLow = RankOrder{
	Name: "regular-low",
	Ranks: []card.Rank{
		card.RankAce, card.RankTwo, card.RankThree, card.RankFour, card.RankFive,
		card.RankSix, card.RankSeven, card.RankEight, card.RankNine, card.RankTen,
		card.RankJack, card.RankQueen, card.RankKing,
	},
}

// EightOrBetterLow is the ace-to-eight ordering used by eight-or-better
// (Omaha Hi-Lo, stud hi-lo) low hands: only ranks ace through eight
// qualify at all.
var EightOrBetterLow = RankOrder{
	Name: "eight-or-better-low",
	Ranks: []card.Rank{
		card.RankAce, card.RankTwo, card.RankThree, card.RankFour,
		card.RankFive, card.RankSix, card.RankSeven, card.RankEight,
	},
}

// Kuhn is the 3-rank jack-through-king ordering used by Kuhn poker.
var Kuhn = RankOrder{
	Name:  "kuhn",
	Ranks: []card.Rank{card.RankJack, card.RankQueen, card.RankKing},
}
