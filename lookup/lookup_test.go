package lookup

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/stretchr/testify/require"
)

func ranks(s string) []card.Rank {
	out := make([]card.Rank, len(s))
	for i := 0; i < len(s); i++ {
		r, err := card.ParseRank(s[i])
		if err != nil {
			panic(err)
		}
		out[i] = r
	}
	return out
}

func TestStandardHighCategoryMonotonicity(t *testing.T) {
	t.Parallel()

	pair, err := StandardHigh.Get(ranks("77234"), false)
	require.NoError(t, err)

	trips, err := StandardHigh.Get(ranks("77723"), false)
	require.NoError(t, err)
	require.Greater(t, trips.Index, pair.Index)

	straightFlush, err := StandardHigh.Get(ranks("23456"), true)
	require.NoError(t, err)

	quads, err := StandardHigh.Get(ranks("77772"), false)
	require.NoError(t, err)
	require.Greater(t, straightFlush.Index, quads.Index)

	fullHouse, err := StandardHigh.Get(ranks("77722"), false)
	require.NoError(t, err)
	require.Greater(t, quads.Index, fullHouse.Index)
}

func TestWheelIsWeakestStraight(t *testing.T) {
	t.Parallel()

	wheel, err := StandardHigh.Get(ranks("2345A"), false)
	require.NoError(t, err)

	sixHigh, err := StandardHigh.Get(ranks("23456"), false)
	require.NoError(t, err)

	require.Less(t, wheel.Index, sixHigh.Index)
	require.Equal(t, Straight, wheel.Label)
}

func TestShortDeckFlushBeatsFullHouseButNotQuads(t *testing.T) {
	t.Parallel()

	fullHouse, err := ShortDeckHigh.Get(ranks("77799"), false)
	require.NoError(t, err)

	// Suited A-6-7-8-9 is the short-deck wheel straight flush, so the flush
	// here skips a rank.
	flush, err := ShortDeckHigh.Get(ranks("6789J"), true)
	require.NoError(t, err)

	quads, err := ShortDeckHigh.Get(ranks("77779"), false)
	require.NoError(t, err)

	require.Greater(t, flush.Index, fullHouse.Index)
	require.Greater(t, quads.Index, flush.Index)
}

func TestEightOrBetterLowRejectsNine(t *testing.T) {
	t.Parallel()

	_, err := EightOrBetterLow8.Get(ranks("98765"), false)
	require.ErrorIs(t, err, ErrInvalidHand)

	entry, err := EightOrBetterLow8.Get(ranks("87654"), false)
	require.NoError(t, err)
	require.Equal(t, HighCard, entry.Label)
}

func TestBadugiLongerBeatsShorter(t *testing.T) {
	t.Parallel()

	one, err := BadugiTable.Get(ranks("A"), false)
	require.NoError(t, err)

	four, err := BadugiTable.Get(ranks("A234"), false)
	require.NoError(t, err)

	require.Greater(t, four.Index, one.Index)
}

func TestBadugiLowerRanksStrongerWithinLength(t *testing.T) {
	t.Parallel()

	low, err := BadugiTable.Get(ranks("A234"), false)
	require.NoError(t, err)

	high, err := BadugiTable.Get(ranks("2345"), false)
	require.NoError(t, err)

	require.Greater(t, low.Index, high.Index)
}

func TestLenIsReasonable(t *testing.T) {
	t.Parallel()
	require.Greater(t, StandardHigh.Len(), 7000)
}
