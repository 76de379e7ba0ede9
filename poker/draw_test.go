package poker

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/stretchr/testify/require"
)

const drawAutomation = AutoAntePosting | AutoBetCollection | AutoBlindPosting |
	AutoShowdownDecisions | AutoHandKilling | AutoChipsPushing | AutoChipsPulling

// TestBadugiStandPatThenFold exercises the drawing phase end to end: both
// seats stand pat (no replacement cards dealt at all), betting resumes on
// the draw street, and a bet-then-fold ends the hand uncontested. This is
// the only test touching Discard/queueReplacementDealing.
func TestBadugiStandPatThenFold(t *testing.T) {
	t.Parallel()

	const button, other = 0, 1
	cfg := Config{
		HandTypes: []eval.Evaluator{eval.BadugiEvaluator()},
		Streets: []Street{
			{Name: "deal", HoleDealStatuses: []bool{false, false, false, false}, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2},
			{Name: "draw1", DrawPhase: true, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2},
			{Name: "draw2", DrawPhase: true, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2},
			{Name: "draw3", DrawPhase: true, Opening: FirstVoluntaryAfterBlinds, MinRaise: 4},
		},
		Structure:      FixedLimit,
		Antes:          []int{0, 0},
		ForcedBets:     []int{1, 2}, // heads-up: button posts small blind
		StartingStacks: []int{50, 50},
		ButtonSeat:     button,
		Deck:           card.NewStandardDeck(),
		Automation:     drawAutomation,
	}
	s, err := New(cfg)
	require.NoError(t, err)

	hole := map[int][]card.Card{
		button: mustCards(t, "2h3h4h5h"),
		other:  mustCards(t, "2c3c4c5c"),
	}
	var board []card.Card

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, button, s.CurrentActor())

	_, err = s.CheckOrCall(button)
	require.NoError(t, err)
	_, err = s.CheckOrCall(other)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.CanDiscard(other))
	_, err = s.Discard(other, nil)
	require.NoError(t, err)
	require.True(t, s.CanDiscard(button))
	_, err = s.Discard(button, nil)
	require.NoError(t, err)

	require.Equal(t, other, s.CurrentActor())
	_, err = s.CheckOrCall(other)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(button, 2)
	require.NoError(t, err)
	_, err = s.Fold(other)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	require.Equal(t, []int{52, 48}, s.Stacks())
}
