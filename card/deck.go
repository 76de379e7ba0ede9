package card

// Deck is an ordered, immutable sequence of Cards as produced by one of
// the three built-in constructors (§3). Shuffle returns a new Deck and
// leaves the original untouched; dealing happens on a Queue built from a
// Deck, never on the Deck itself.
type Deck []Card

// NewStandardDeck returns the 52-card deck: every rank crossed with every
// suit, enumerated suit-major so the natural order is Ac,2c,...,Kc,Ad,...
func NewStandardDeck() Deck {
	return buildDeck(AllRanks)
}

// NewShortDeck returns the short-deck (6-plus) deck: ranks 6 through ace,
// four suits each (§3 "short-deck (6-A x 4 suits)").
func NewShortDeck() Deck {
	ranks := make([]Rank, 0, 9)
	for _, r := range AllRanks {
		if r == RankAce || r >= RankSix {
			ranks = append(ranks, r)
		}
	}
	return buildDeck(ranks)
}

func buildDeck(ranks []Rank) Deck {
	d := make(Deck, 0, len(ranks)*4)
	for _, s := range AllSuits {
		for _, r := range ranks {
			d = append(d, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// NewKuhnDeck returns the 3-card Kuhn poker deck (jack, queen, king).
// Suits carry no meaning in Kuhn poker; a single arbitrary suit is used
// so every Card stays a well-formed (rank, suit) pair.
func NewKuhnDeck() Deck {
	return Deck{
		{Rank: RankJack, Suit: SuitSpade},
		{Rank: RankQueen, Suit: SuitSpade},
		{Rank: RankKing, Suit: SuitSpade},
	}
}

// Queue is the consumable, mutable form of a Deck: the live pile a State
// deals from. Cards are removed from the front as they are dealt.
type Queue struct {
	cards []Card
}

// NewQueue wraps a (already-shuffled, if desired) Deck as a live Queue.
func NewQueue(d Deck) *Queue {
	q := &Queue{cards: make([]Card, len(d))}
	copy(q.cards, d)
	return q
}

// Len returns the number of cards remaining.
func (q *Queue) Len() int { return len(q.cards) }

// Pop removes and returns the card at the head of the queue.
func (q *Queue) Pop() (Card, bool) {
	if len(q.cards) == 0 {
		return Card{}, false
	}
	c := q.cards[0]
	q.cards = q.cards[1:]
	return c, true
}

// Cards returns a defensive copy of the remaining cards, in order.
func (q *Queue) Cards() []Card {
	out := make([]Card, len(q.cards))
	copy(out, q.cards)
	return out
}

// Locate reports the index of the first card equal to target, or -1.
func (q *Queue) Locate(target Card) int {
	for i, c := range q.cards {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}

// SwapToFront moves the card at index i to the front of the queue,
// preserving the relative order of every other card. It is the mechanism
// behind replay-mode dealing (§4.4 "Dealing"): when a caller supplies a
// known card identity, the engine locates it in the deck queue (or, via
// the caller, the burn pile) and swaps it into dealing position instead
// of requiring it to already be on top.
func (q *Queue) SwapToFront(i int) {
	if i <= 0 || i >= len(q.cards) {
		return
	}
	c := q.cards[i]
	copy(q.cards[1:i+1], q.cards[0:i])
	q.cards[0] = c
}

// Remove deletes and returns the card at index i.
func (q *Queue) Remove(i int) Card {
	c := q.cards[i]
	q.cards = append(q.cards[:i], q.cards[i+1:]...)
	return c
}

// PushFront reinserts a card at the head of the queue. No caller in this
// module uses it: replay dealing takes burned cards straight from the burn
// pile without returning them to the queue.
func (q *Queue) PushFront(c Card) {
	q.cards = append([]Card{c}, q.cards...)
}
