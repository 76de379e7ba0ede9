package poker

// Structure selects the betting-limit rules a State enforces (§4.5).
type Structure uint8

const (
	FixedLimit Structure = iota
	PotLimit
	NoLimit
)

func (s Structure) String() string {
	switch s {
	case FixedLimit:
		return "fixed-limit"
	case PotLimit:
		return "pot-limit"
	case NoLimit:
		return "no-limit"
	default:
		return "unknown"
	}
}
