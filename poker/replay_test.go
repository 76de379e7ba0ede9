package poker

import (
	"testing"

	"github.com/lox/pokerengine/card"
	"github.com/stretchr/testify/require"
)

// mustCards parses a run of two-character literals into a slice.
func mustCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	return cs
}

// dealKnown drains every pending burn, hole, and board slot using known
// card identities instead of the automated deck-queue head, the way a
// notation replay supplies the original hand's exact cards (§9 supplemented
// feature 5). hole maps seat to a queue of that seat's remaining hole cards,
// consumed in deal order; board is a queue shared across every street still
// to be dealt. It loops until nothing is left pending, since an all-in
// run-out chains straight from one street's dealing into the next's.
func dealKnown(t *testing.T, s *State, hole map[int][]card.Card, board *[]card.Card) {
	t.Helper()
	for {
		progressed := false
		for s.CanBurnCard() {
			_, err := s.BurnCard()
			require.NoError(t, err)
			progressed = true
		}
		for s.CanDealHole() {
			seat, _, err := s.VerifyDealHole()
			require.NoError(t, err)
			require.NotEmpty(t, hole[seat], "seat %d has no known hole card queued", seat)
			c := hole[seat][0]
			hole[seat] = hole[seat][1:]
			_, err = s.DealHole(&c)
			require.NoError(t, err)
			progressed = true
		}
		for s.CanDealBoard() {
			require.NotEmpty(t, *board, "no known board card queued")
			c := (*board)[0]
			*board = (*board)[1:]
			_, err := s.DealBoard(&c)
			require.NoError(t, err)
			progressed = true
		}
		if !progressed {
			return
		}
	}
}
