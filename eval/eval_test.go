package eval

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []card.Card {
	t.Helper()
	cards, err := card.ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestStandardHighPicksBestFive(t *testing.T) {
	t.Parallel()
	e := StandardHighEvaluator()

	hole := mustParse(t, "AsKs")
	board := mustParse(t, "QsJsTs2h3h")

	hand, err := e.BestHand(hole, board)
	require.NoError(t, err)
	require.Len(t, hand.Cards, 5)

	weaker, err := e.BestHand(mustParse(t, "2c3c"), board)
	require.NoError(t, err)
	require.True(t, e.Better(*hand, *weaker))
}

func TestGreekFixesHole(t *testing.T) {
	t.Parallel()
	e := GreekHighEvaluator()

	hole := mustParse(t, "AsAh")
	board := mustParse(t, "AdKsQsJsTs")

	hand, err := e.BestHand(hole, board)
	require.NoError(t, err)
	require.Len(t, hand.Cards, 5)
	require.Contains(t, hand.Cards, hole[0])
	require.Contains(t, hand.Cards, hole[1])
}

func TestOmahaRequiresExactlyTwoHole(t *testing.T) {
	t.Parallel()
	e := OmahaHighEvaluator()

	hole := mustParse(t, "AsAhKsKh")
	board := mustParse(t, "2c3c4c5c6c")

	hand, err := e.BestHand(hole, board)
	require.NoError(t, err)
	require.Len(t, hand.Cards, 5)

	holeCount := 0
	for _, c := range hand.Cards {
		for _, h := range hole {
			if c.Equal(h) {
				holeCount++
			}
		}
	}
	require.Equal(t, 2, holeCount)
}

func TestEightOrBetterLowRejectsWhenNoQualifier(t *testing.T) {
	t.Parallel()
	e := EightOrBetterLowEvaluator(AnyFive)

	hole := mustParse(t, "AsKs")
	board := mustParse(t, "QsJsTs9h8h")

	_, err := e.BestHand(hole, board)
	require.Error(t, err)
}

func TestBadugiGreedySelectsFourDistinct(t *testing.T) {
	t.Parallel()
	e := BadugiEvaluator()

	hand, err := e.BestHand(mustParse(t, "AsKdQhJc"), nil)
	require.NoError(t, err)
	require.Len(t, hand.Cards, 4)
}

func TestBadugiSkipsDuplicateRankAndSuit(t *testing.T) {
	t.Parallel()
	e := BadugiEvaluator()

	// A-2-3 of spades plus 4 of hearts: second and third spades must be
	// skipped, leaving the ace of spades and the four of hearts.
	hand, err := e.BestHand(mustParse(t, "As2s3s4h"), nil)
	require.NoError(t, err)
	require.Len(t, hand.Cards, 2)
}

func TestKuhnComparesSingleCard(t *testing.T) {
	t.Parallel()
	e := KuhnEvaluator()

	king, err := e.BestHand(mustParse(t, "Ks"), nil)
	require.NoError(t, err)
	jack, err := e.BestHand(mustParse(t, "Js"), nil)
	require.NoError(t, err)

	require.True(t, e.Better(*king, *jack))
}

func TestPartialHighVsLowInversion(t *testing.T) {
	t.Parallel()
	high := PartialHighEvaluator()
	low := PartialLowEvaluator()

	upA := mustParse(t, "Ks")
	upB := mustParse(t, "2h")

	handHighA, err := high.BestHand(upA, nil)
	require.NoError(t, err)
	handHighB, err := high.BestHand(upB, nil)
	require.NoError(t, err)
	require.True(t, high.Better(*handHighA, *handHighB))

	handLowA, err := low.BestHand(upA, nil)
	require.NoError(t, err)
	handLowB, err := low.BestHand(upB, nil)
	require.NoError(t, err)
	require.True(t, low.Better(*handLowB, *handLowA))
}
