package poker

// Phase tags the state machine's current position in the lifecycle of
// §3 "Lifecycle" (§9 "explicit tagged state-variant enum for the current
// phase").
type Phase uint8

const (
	PhaseAntePosting Phase = iota
	PhaseBetCollection
	PhaseBlindPosting
	PhaseDealing
	PhaseDrawing
	PhaseBetting
	PhaseShowdown
	PhaseHandKilling
	PhaseChipsPushing
	PhaseChipsPulling
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseAntePosting:
		return "ante-posting"
	case PhaseBetCollection:
		return "bet-collection"
	case PhaseBlindPosting:
		return "blind-posting"
	case PhaseDealing:
		return "dealing"
	case PhaseDrawing:
		return "drawing"
	case PhaseBetting:
		return "betting"
	case PhaseShowdown:
		return "showdown"
	case PhaseHandKilling:
		return "hand-killing"
	case PhaseChipsPushing:
		return "chips-pushing"
	case PhaseChipsPulling:
		return "chips-pulling"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Phase returns the state machine's current phase.
func (s *State) Phase() Phase { return s.phase }

// IsTerminal reports whether the hand has finished (chips pulled).
func (s *State) IsTerminal() bool { return s.phase == PhaseTerminal }
