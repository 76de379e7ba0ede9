package poker

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
	"github.com/stretchr/testify/require"
)

// studAutomation omits AutoHoleDealing so the test can seed specific
// up-cards, which decide who is forced to post the bring-in.
const studAutomation = AutoAntePosting | AutoBetCollection |
	AutoShowdownDecisions | AutoHandKilling | AutoChipsPushing | AutoChipsPulling

// TestSevenCardStudBringInCompletion exercises a bring-in posted on the
// lowest third-street up card, then completed to the full small bet. It
// pins down minRaiseTo's completionPending branch: completing the bring-in
// must cost exactly the small bet, not the small bet stacked on top of the
// bring-in already in front of the bring-in poster.
func TestSevenCardStudBringInCompletion(t *testing.T) {
	t.Parallel()

	cfg := Config{
		HandTypes: []eval.Evaluator{eval.StandardHighEvaluator()},
		Streets: []Street{
			{Name: "third", HoleDealStatuses: []bool{false, false, true}, Opening: LowestUpCard, MinRaise: 4},
			{Name: "fourth", HoleDealStatuses: []bool{true}, Opening: HighestUpHand, MinRaise: 4},
			{Name: "fifth", HoleDealStatuses: []bool{true}, Opening: HighestUpHand, MinRaise: 8},
			{Name: "sixth", HoleDealStatuses: []bool{true}, Opening: HighestUpHand, MinRaise: 8},
			{Name: "seventh", HoleDealStatuses: []bool{false}, Opening: HighestUpHand, MinRaise: 8},
		},
		Structure:      FixedLimit,
		Antes:          []int{1, 1, 1},
		BringIn:        2,
		StartingStacks: []int{100, 100, 100},
		ButtonSeat:     2,
		Deck:           card.NewStandardDeck(),
		Automation:     studAutomation,
	}
	s, err := New(cfg)
	require.NoError(t, err)

	hole := map[int][]card.Card{
		0: mustCards(t, "2h3hKc"),
		1: mustCards(t, "4h5h2c9h"),
		2: mustCards(t, "6h8h7cTh"),
	}
	var board []card.Card

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)

	// Seat 1 shows the lowest up card (2c) and must post the bring-in.
	require.Equal(t, 1, s.CurrentActor())
	require.True(t, s.bringInPending)
	_, err = s.PostBringIn(1)
	require.NoError(t, err)
	require.Equal(t, 2, s.Bets()[1])
	require.True(t, s.completionPending)

	// Completing to the small bet (4) must be legal: the pending-completion
	// floor is the street's min_raise itself, not min_raise + bring-in.
	require.Equal(t, 2, s.CurrentActor())
	err = s.VerifyCompleteBetOrRaiseTo(2, 4)
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(2, 4)
	require.NoError(t, err)
	require.Equal(t, 4, s.Events()[len(s.Events())-1].Amount)

	_, err = s.Fold(0)
	require.NoError(t, err)
	_, err = s.CheckOrCall(1)
	require.NoError(t, err)
	require.Equal(t, 4, s.Bets()[1])

	_, err = s.RunAutomated()
	require.NoError(t, err)
	dealKnown(t, s, hole, &board)

	opener := s.CurrentActor()
	require.Contains(t, []int{1, 2}, opener)
	_, err = s.CompleteBetOrRaiseTo(opener, 4)
	require.NoError(t, err)
	other := s.CurrentActor()
	require.NotEqual(t, opener, other)
	_, err = s.Fold(other)
	require.NoError(t, err)

	_, err = s.RunAutomated()
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	stacks := s.Stacks()
	require.Equal(t, 99, stacks[0])
	require.ElementsMatch(t, []int{95, 106}, []int{stacks[1], stacks[2]})

	total := 0
	for _, v := range stacks {
		total += v
	}
	require.Equal(t, 300, total)
}
