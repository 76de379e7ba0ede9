package poker

// Opening selects how a betting round's first actor is determined (§4.5).
type Opening uint8

const (
	// FirstVoluntaryAfterBlinds opens on the seat after the max-bet seat:
	// after the big blind on street 1, after the button on later streets.
	FirstVoluntaryAfterBlinds Opening = iota
	// LowestUpCard opens on the alive player with the single lowest up
	// card, ties broken by suit order (stud first street).
	LowestUpCard
	// HighestUpCard is LowestUpCard's mirror (Razz first street).
	HighestUpCard
	// LowestUpHand opens on the alive player whose up cards form the
	// weakest partial hand (later stud streets).
	LowestUpHand
	// HighestUpHand is LowestUpHand's mirror.
	HighestUpHand
)

func (o Opening) String() string {
	switch o {
	case FirstVoluntaryAfterBlinds:
		return "first-voluntary-after-blinds"
	case LowestUpCard:
		return "lowest-up-card"
	case HighestUpCard:
		return "highest-up-card"
	case LowestUpHand:
		return "lowest-up-hand"
	case HighestUpHand:
		return "highest-up-hand"
	default:
		return "unknown"
	}
}

// Street is an immutable descriptor of one betting round (§3).
type Street struct {
	Name             string
	BurnBeforeDeal   bool
	HoleDealStatuses []bool // one entry per hole card dealt this street; true = face up
	BoardDealCount   int
	DrawPhase        bool
	Opening          Opening
	MinRaise         int
	MaxRaiseCount    *int // nil for pot-limit/no-limit
}

// HoleCardCount returns how many hole cards this street deals per player.
func (s Street) HoleCardCount() int { return len(s.HoleDealStatuses) }

// validate checks one street against §4.3's constraints.
func (s Street) validate(isFirst bool) error {
	if s.BoardDealCount < 0 {
		return configErrorf("street %q: board_deal_count must be >= 0", s.Name)
	}
	dealsSomething := len(s.HoleDealStatuses) > 0 || s.BoardDealCount > 0 || s.DrawPhase
	if !dealsSomething {
		return configErrorf("street %q: must deal a hole card, a board card, or be a draw phase", s.Name)
	}
	if s.DrawPhase && len(s.HoleDealStatuses) > 0 {
		return configErrorf("street %q: cannot both deal hole cards and be a draw phase", s.Name)
	}
	if s.MinRaise <= 0 {
		return configErrorf("street %q: min_raise must be > 0", s.Name)
	}
	if s.MaxRaiseCount != nil && *s.MaxRaiseCount < 0 {
		return configErrorf("street %q: max_raise_count must be >= 0 or nil", s.Name)
	}
	if isFirst && len(s.HoleDealStatuses) == 0 {
		return configErrorf("street %q: the first street must deal at least one hole card", s.Name)
	}
	return nil
}

func validateStreets(streets []Street) error {
	if len(streets) == 0 {
		return configErrorf("at least one street is required")
	}
	for i, s := range streets {
		if err := s.validate(i == 0); err != nil {
			return err
		}
	}
	return nil
}
