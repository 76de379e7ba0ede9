package poker

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/stretchr/testify/require"
)

func kuhnConfig() Config {
	return Config{
		HandTypes: []eval.Evaluator{eval.KuhnEvaluator()},
		Streets: []Street{{
			Name:             "deal",
			HoleDealStatuses: []bool{false},
			Opening:          FirstVoluntaryAfterBlinds,
			MinRaise:         1,
			MaxRaiseCount:    intPtr(1),
		}},
		Structure:      FixedLimit,
		Antes:          []int{1, 1},
		StartingStacks: []int{2, 2},
		ButtonSeat:     1,
		Deck:           card.NewKuhnDeck(),
		Automation: AutoAntePosting | AutoBetCollection | AutoBlindPosting |
			AutoHoleDealing | AutoCardBurning | AutoBoardDealing |
			AutoShowdownDecisions | AutoHandKilling | AutoChipsPushing | AutoChipsPulling,
	}
}

func intPtr(v int) *int { return &v }

// TestKuhnPokerScenario reproduces the heads-up Kuhn poker end-to-end
// scenario: player 0 checks, player 1 bets 1, player 0 folds.
func TestKuhnPokerScenario(t *testing.T) {
	t.Parallel()
	s, err := New(kuhnConfig())
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)
	require.Equal(t, PhaseBetting, s.Phase())
	require.Equal(t, 0, s.CurrentActor())

	_, err = s.CheckOrCall(0)
	require.NoError(t, err)
	require.Equal(t, 1, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, s.CurrentActor())

	_, err = s.Fold(0)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	require.Equal(t, []int{1, 3}, s.Stacks())
}

func TestKuhnPokerChipConservation(t *testing.T) {
	t.Parallel()
	s, err := New(kuhnConfig())
	require.NoError(t, err)
	_, err = s.RunAutomated()
	require.NoError(t, err)

	_, err = s.CheckOrCall(0)
	require.NoError(t, err)
	_, err = s.CheckOrCall(1)
	require.NoError(t, err)
	_, err = s.RunAutomated()
	require.NoError(t, err)

	total := 0
	for _, stack := range s.Stacks() {
		total += stack
	}
	require.Equal(t, 4, total)
}
