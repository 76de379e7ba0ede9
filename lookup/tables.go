package lookup

import "golang.org/x/sync/errgroup"

// Package-level immutable tables, lazily safe to share read-only across
// goroutines once built (§5, §9 "lazily-initialized process-wide
// immutable tables"). Construction happens once, in init, fanned out one
// goroutine per table the same way the teacher's Monte-Carlo equity
// workers fan out over independent samples — each table is a pure,
// CPU-bound enumeration with no shared mutable state.
var (
	StandardHigh      *Lookup
	ShortDeckHigh     *Lookup
	RegularLowTable   *Lookup
	EightOrBetterLow8 *Lookup
	BadugiTable       *Lookup
	StudPartial       *Lookup
	KuhnTable         *Lookup
)

func init() {
	var g errgroup.Group

	g.Go(func() error { StandardHigh = BuildAnyFiveHigh(Standard, true); return nil })
	g.Go(func() error { ShortDeckHigh = BuildAnyFiveHigh(ShortDeck, false); return nil })
	g.Go(func() error { RegularLowTable = BuildRegularLow(RegularLow); return nil })
	g.Go(func() error { EightOrBetterLow8 = BuildEightOrBetterLow(EightOrBetterLow); return nil })
	g.Go(func() error { BadugiTable = BuildBadugi(RegularLow); return nil })
	g.Go(func() error { StudPartial = BuildPartial(Standard); return nil })
	g.Go(func() error { KuhnTable = BuildPartial(Kuhn); return nil })

	_ = g.Wait() // every builder above is infallible; error is always nil
}
