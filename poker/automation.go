package poker

// Automation is a bitset of phases the engine runs to completion without
// external calls (§4.4 "Automation", §9 "a bitset of phase flags").
type Automation uint16

const (
	AutoAntePosting Automation = 1 << iota
	AutoBetCollection
	AutoBlindPosting
	AutoCardBurning
	AutoBoardDealing
	AutoHoleDealing
	AutoShowdownDecisions
	AutoHandKilling
	AutoChipsPushing
	AutoChipsPulling
)

// Has reports whether flag is set in a.
func (a Automation) Has(flag Automation) bool { return a&flag != 0 }
