package lookup

import (
	"fmt"

	"github.com/lox/pokerengine/card"
)

// primes are the thirteen rank primes of §4.1 step 1, assigned to a
// RankOrder's positions ascending (weakest rank gets the smallest prime).
// The product of a multiset's rank primes is commutative and, because the
// primes are pairwise coprime and the multisets this engine ever hashes
// never exceed five cards, collision-free across every legal multiset.
var primes = [13]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

func primeTable(order RankOrder) map[card.Rank]uint64 {
	t := make(map[card.Rank]uint64, len(order.Ranks))
	for i, r := range order.Ranks {
		if i >= len(primes) {
			break
		}
		t[r] = primes[i]
	}
	return t
}

// key is the (hash, suited) pair a Lookup maps to a HandEntry.
type key struct {
	hash   uint64
	suited bool
}

// Lookup is an immutable mapping (hash, suited) -> HandEntry, built once
// at startup and safe to share read-only across goroutines (§5).
type Lookup struct {
	Order   RankOrder
	primes  map[card.Rank]uint64
	entries map[key]HandEntry
}

// ErrInvalidHand is raised when a multiset has no entry in a Lookup — the
// caller's signal that the hand does not qualify under that table (§4.1
// "Failure").
var ErrInvalidHand = fmt.Errorf("lookup: hand not found in table")

// hash computes the prime-product hash of a rank multiset. Unknown ranks
// (not present in the owning RankOrder) make the multiset unhashable;
// callers must never pass them.
func (l *Lookup) hash(ranks []card.Rank) (uint64, bool) {
	h := uint64(1)
	for _, r := range ranks {
		p, ok := l.primes[r]
		if !ok {
			return 0, false
		}
		h *= p
	}
	return h, true
}

// Get resolves a rank multiset plus suitedness flag to its HandEntry.
func (l *Lookup) Get(ranks []card.Rank, suited bool) (HandEntry, error) {
	h, ok := l.hash(ranks)
	if !ok {
		return HandEntry{}, ErrInvalidHand
	}
	e, ok := l.entries[key{hash: h, suited: suited}]
	if !ok {
		return HandEntry{}, ErrInvalidHand
	}
	return e, nil
}

// Len returns the number of distinct table entries, for diagnostics and
// tests (§9 estimates ~7,000 entries total across every lookup).
func (l *Lookup) Len() int { return len(l.entries) }

// builder accumulates entries for one Lookup under construction. It is
// not exported: callers only ever see the finished, immutable Lookup.
type builder struct {
	order   RankOrder
	primes  map[card.Rank]uint64
	entries map[key]HandEntry
	next    int
}

func newBuilder(order RankOrder) *builder {
	return &builder{
		order:   order,
		primes:  primeTable(order),
		entries: make(map[key]HandEntry),
	}
}

func (b *builder) rankHash(ranks []card.Rank) uint64 {
	h := uint64(1)
	for _, r := range ranks {
		h *= b.primes[r]
	}
	return h
}

// add assigns the next strength index to every (ranks, suited) pair in
// combos, in the order given — callers must pass combos weakest-first so
// that increasing index means increasing strength (§4.1 step 3).
func (b *builder) add(label Category, combos [][]card.Rank, suited bool) {
	for _, ranks := range combos {
		k := key{hash: b.rankHash(ranks), suited: suited}
		if _, exists := b.entries[k]; exists {
			continue
		}
		b.entries[k] = HandEntry{Index: b.next, Label: label}
		b.next++
	}
}

// addBoth is add called for both suitedness states, used by lookups that
// ignore suit entirely (eight-or-better low, regular low, Badugi).
func (b *builder) addBoth(label Category, combos [][]card.Rank) {
	for _, ranks := range combos {
		h := b.rankHash(ranks)
		entry := HandEntry{Index: b.next, Label: label}
		b.entries[key{hash: h, suited: false}] = entry
		b.entries[key{hash: h, suited: true}] = entry
		b.next++
	}
}

func (b *builder) build() *Lookup {
	return &Lookup{Order: b.order, primes: b.primes, entries: b.entries}
}
