package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	c, err := Parse("As")
	require.NoError(t, err)
	require.Equal(t, Card{Rank: RankAce, Suit: SuitSpade}, c)
	require.Equal(t, "As", c.String())

	u, err := Parse("??")
	require.NoError(t, err)
	require.True(t, u.IsUnknown())
	require.Equal(t, "??", u.String())
}

func TestParseCardRejectsMixedUnknown(t *testing.T) {
	t.Parallel()

	_, err := Parse("A?")
	require.ErrorIs(t, err, ErrInvalidCard)
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AsKsQh")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	require.Equal(t, "AsKsQh", FormatCards(cards))
}

func TestNewStandardDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := NewStandardDeck()
	require.Len(t, d, 52)

	seen := make(map[Card]bool, 52)
	for _, c := range d {
		require.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestNewShortDeckHas36Cards(t *testing.T) {
	t.Parallel()

	d := NewShortDeck()
	require.Len(t, d, 36)
	for _, c := range d {
		require.True(t, c.Rank == RankAce || c.Rank >= RankSix)
	}
}

func TestNewKuhnDeckHas3Cards(t *testing.T) {
	t.Parallel()
	require.Len(t, NewKuhnDeck(), 3)
}

func TestQueueSwapToFrontPreservesContents(t *testing.T) {
	t.Parallel()

	q := NewQueue(NewStandardDeck())
	before := q.Cards()

	idx := q.Locate(Card{Rank: RankKing, Suit: SuitSpade})
	require.GreaterOrEqual(t, idx, 0)

	q.SwapToFront(idx)
	top, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, before[idx], top)
	require.Equal(t, len(before)-1, q.Len())
}

func TestShuffleIsDeterministicForAGivenSource(t *testing.T) {
	t.Parallel()

	d := NewStandardDeck()
	a := d.Shuffle(rand.New(rand.NewSource(1)))
	b := d.Shuffle(rand.New(rand.NewSource(1)))
	require.Equal(t, a, b)
	require.NotEqual(t, d, a)
}
