package poker

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/stretchr/testify/require"
)

const scenarioAutomation = AutoAntePosting | AutoBetCollection | AutoBlindPosting |
	AutoShowdownDecisions | AutoHandKilling | AutoChipsPushing | AutoChipsPulling

// TestScenarioNoLimitHoldemThreeHanded reproduces the Ivey/X/Dwan hand: a
// three-handed no-limit hold'em pot that runs to an all-in river with an
// uncalled-raise refund on the turn. Final stacks must match exactly.
func TestScenarioNoLimitHoldemThreeHanded(t *testing.T) {
	t.Parallel()

	const ivey, x, dwan = 0, 1, 2
	cfg := Config{
		HandTypes: []eval.Evaluator{eval.StandardHighEvaluator()},
		Streets: []Street{
			{Name: "preflop", HoleDealStatuses: []bool{false, false}, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "flop", BurnBeforeDeal: true, BoardDealCount: 3, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "turn", BurnBeforeDeal: true, BoardDealCount: 1, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "river", BurnBeforeDeal: true, BoardDealCount: 1, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
		},
		Structure:      NoLimit,
		Antes:          []int{500, 500, 500},
		ForcedBets:     []int{1000, 2000, 0}, // seat after button (Ivey) posts SB, next (X) posts BB
		StartingStacks: []int{1125600, 2000000, 553500},
		ButtonSeat:     dwan,
		Deck:           card.NewStandardDeck(),
		Automation:     scenarioAutomation,
	}
	s, err := New(cfg)
	require.NoError(t, err)

	hole := map[int][]card.Card{
		ivey: mustCards(t, "Ac2d"),
		x:    mustCards(t, "5h7s"),
		dwan: mustCards(t, "7h6h"),
	}
	board := mustCards(t, "Jc3d5c4hJh")

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, dwan, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(dwan, 7000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(ivey, 23000)
	require.NoError(t, err)
	_, err = s.Fold(x)
	require.NoError(t, err)
	_, err = s.CheckOrCall(dwan)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, ivey, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(ivey, 35000)
	require.NoError(t, err)
	_, err = s.CheckOrCall(dwan)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, ivey, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(ivey, 90000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(dwan, 232600)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(ivey, 1067100)
	require.NoError(t, err)
	_, err = s.CheckOrCall(dwan)
	require.NoError(t, err)

	// Both players are all-in; the river runs out with no further betting.
	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	require.Equal(t, []int{572100, 1997500, 1109500}, s.Stacks())
}

// TestScenarioPotLimitOmahaHeadsUp reproduces the Antonius/Blom hand: a
// heads-up pot-limit Omaha pot where the turn and river run out card-by-card
// with no further betting once Blom is all-in on the flop.
func TestScenarioPotLimitOmahaHeadsUp(t *testing.T) {
	t.Parallel()

	const antonius, blom = 0, 1
	cfg := Config{
		HandTypes: []eval.Evaluator{eval.OmahaHighEvaluator()},
		Streets: []Street{
			{Name: "preflop", HoleDealStatuses: []bool{false, false, false, false}, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "flop", BurnBeforeDeal: true, BoardDealCount: 3, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "turn", BurnBeforeDeal: true, BoardDealCount: 1, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
			{Name: "river", BurnBeforeDeal: true, BoardDealCount: 1, Opening: FirstVoluntaryAfterBlinds, MinRaise: 2000},
		},
		Structure:      PotLimit,
		Antes:          []int{0, 0},
		ForcedBets:     []int{100000, 50000}, // button (Blom) posts SB, other (Antonius) posts BB
		StartingStacks: []int{125945025, 67847350},
		ButtonSeat:     blom,
		Deck:           card.NewStandardDeck(),
		Automation:     scenarioAutomation,
	}
	s, err := New(cfg)
	require.NoError(t, err)

	hole := map[int][]card.Card{
		antonius: mustCards(t, "Ah3sKsKh"),
		blom:     mustCards(t, "6d9s7d8h"),
	}
	board := mustCards(t, "4s5c2h5h9c")

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, blom, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(blom, 300000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(antonius, 900000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(blom, 2700000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(antonius, 8100000)
	require.NoError(t, err)
	_, err = s.CheckOrCall(blom)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	require.Equal(t, antonius, s.CurrentActor())

	_, err = s.CompleteBetOrRaiseTo(antonius, 9100000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(blom, 43500000)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(antonius, 77900000)
	require.NoError(t, err)
	_, err = s.CheckOrCall(blom) // clamped to Blom's remaining stack
	require.NoError(t, err)

	// Blom is all-in; turn and river run out with no further betting.
	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)
	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	require.Equal(t, []int{193792375, 0}, s.Stacks())
}
