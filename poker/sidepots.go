package poker

import "sort"

// Pot is a derived, not stored, (amount, eligible seats) pair (§3).
type Pot struct {
	Amount   int
	Eligible []int
}

// Pots constructs the main and side pots from current stacks, bets and
// statuses, innermost (widest eligibility) first (§4.6).
func (s *State) Pots() []Pot {
	n := s.numSeats
	contribution := make([]int, n)
	pending := make([]int, n)
	anteSeed := 0
	for i := 0; i < n; i++ {
		effectiveAnte := 0
		if !s.anteTrimming {
			effectiveAnte = s.anteTotals[i]
			anteSeed += effectiveAnte
		}
		contribution[i] = s.startingStacks[i] - s.bets[i] - s.stacks[i] - effectiveAnte
		pending[i] = s.startingStacks[i] - s.stacks[i] - effectiveAnte
	}

	levels := distinctSorted(contribution)
	var pots []Pot
	prev := 0
	for _, level := range levels {
		if level <= prev {
			continue
		}
		width := 0
		for i := 0; i < n; i++ {
			if contribution[i] >= level {
				width++
			}
		}
		amount := (level - prev) * width
		var eligible []int
		for i := 0; i < n; i++ {
			if s.statuses[i] && pending[i] >= level {
				eligible = append(eligible, i)
			}
		}
		if amount > 0 && len(eligible) > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		}
		prev = level
	}
	if anteSeed > 0 && len(pots) > 0 {
		pots[0].Amount += anteSeed
	} else if anteSeed > 0 {
		var eligible []int
		for i := 0; i < n; i++ {
			if s.statuses[i] {
				eligible = append(eligible, i)
			}
		}
		pots = append([]Pot{{Amount: anteSeed, Eligible: eligible}}, pots...)
	}
	return pots
}

func distinctSorted(values []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, v := range values {
		if v > 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
