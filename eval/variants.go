package eval

import "github.com/lox/pokerengine/lookup"

// The following constructors return ready-to-use Evaluators for every
// rank-category family a variant in the supplemented scenario list (§8)
// needs. Each wraps one of the process-wide lookup.* singletons, so
// constructing an Evaluator is cheap and side-effect free.

// StandardHighEvaluator is Texas Hold'em / Seven Card Stud's any-5 high
// evaluator.
func StandardHighEvaluator() Evaluator {
	return Evaluator{Name: "standard-high", Order: lookup.Standard, Table: lookup.StandardHigh, High: true, Family: AnyFive}
}

// ShortDeckHighEvaluator is short-deck hold'em's any-5 high evaluator,
// under the reordered short-deck category table (§8 property 5).
func ShortDeckHighEvaluator() Evaluator {
	return Evaluator{Name: "short-deck-high", Order: lookup.ShortDeck, Table: lookup.ShortDeckHigh, High: true, Family: AnyFive}
}

// RazzLowEvaluator is Razz's any-5 ace-to-five low evaluator.
func RazzLowEvaluator() Evaluator {
	return Evaluator{Name: "razz-low", Order: lookup.RegularLow, Table: lookup.RegularLowTable, High: false, Family: AnyFive}
}

// TripleDrawLowEvaluator is 2-to-7 triple draw's any-5 low evaluator: the
// standard high table read in low mode, so the ace plays high and
// straights and flushes count against the low hand.
func TripleDrawLowEvaluator() Evaluator {
	return Evaluator{Name: "deuce-to-seven-low", Order: lookup.Standard, Table: lookup.StandardHigh, High: false, Family: AnyFive}
}

// EightOrBetterLowEvaluator is Omaha Hi-Lo / stud hi-lo's qualifying low
// evaluator. BestHand reports lookup.ErrInvalidHand when no 5-card
// combination qualifies at eight-or-better.
func EightOrBetterLowEvaluator(family Family) Evaluator {
	return Evaluator{Name: "eight-or-better-low", Order: lookup.EightOrBetterLow, Table: lookup.EightOrBetterLow8, High: false, Family: family}
}

// GreekHighEvaluator is Greek hold'em's fixed-hole, 3-of-board high
// evaluator.
func GreekHighEvaluator() Evaluator {
	return Evaluator{Name: "greek-high", Order: lookup.Standard, Table: lookup.StandardHigh, High: true, Family: Greek}
}

// OmahaHighEvaluator is Omaha's 2-hole/3-board high evaluator.
func OmahaHighEvaluator() Evaluator {
	return Evaluator{Name: "omaha-high", Order: lookup.Standard, Table: lookup.StandardHigh, High: true, Family: Omaha}
}

// BadugiEvaluator is Badugi's greedy distinct-rank/suit low evaluator.
// Low-is-strong is baked into BadugiTable itself (§4.1): lower and longer
// badugis already carry higher indices, so High is true and the table
// never needs inversion.
func BadugiEvaluator() Evaluator {
	return Evaluator{Name: "badugi", Order: lookup.RegularLow, Table: lookup.BadugiTable, High: true, Family: Badugi}
}

// KuhnEvaluator is Kuhn poker's single-card evaluator.
func KuhnEvaluator() Evaluator {
	return Evaluator{Name: "kuhn", Order: lookup.Kuhn, Table: lookup.KuhnTable, High: true, Family: Kuhn}
}

// PartialHighEvaluator resolves the HighestUpHand stud opening rule over
// 1-to-4 card up-card multisets.
func PartialHighEvaluator() Evaluator {
	return Evaluator{Name: "partial-high", Order: lookup.Standard, Table: lookup.StudPartial, High: true, Family: Partial}
}

// PartialLowEvaluator resolves the LowestUpHand stud opening rule (bring-
// in) over the same partial-hand table, inverted.
func PartialLowEvaluator() Evaluator {
	return Evaluator{Name: "partial-low", Order: lookup.Standard, Table: lookup.StudPartial, High: false, Family: Partial}
}
