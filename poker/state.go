// Package poker implements the L3 state machine that drives a single
// hand of poker across an open family of variants (§2).
package poker

import (
	"github.com/charmbracelet/log"
	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/eval"
)

// Config is the immutable description a State is built from (§3 "A State
// is constructed from a variant definition and per-seat stacks").
type Config struct {
	HandTypes      []eval.Evaluator // 1, or 2 for high-low split
	Streets        []Street
	Structure      Structure
	Antes          []int
	ForcedBets     []int // blinds_or_straddles[i], one entry per seat, 0 if none
	BringIn        int
	AnteTrimming   bool
	StartingStacks []int
	ButtonSeat     int
	Deck           card.Deck
	Automation     Automation
	Logger         *log.Logger
}

// State is the central entity of §3: it owns every mutable collection of
// one hand and exposes the phase-engine triples of §4.4.
type State struct {
	handTypes      []eval.Evaluator
	streets        []Street
	structure      Structure
	antes          []int
	forcedBets     []int
	bringIn        int
	anteTrimming   bool
	startingStacks []int
	buttonSeat     int
	automation     Automation
	logger         *log.Logger

	numSeats int

	deckQueue   *card.Queue
	boardCards  []card.Card
	burnedCards []card.Card
	muckedCards []card.Card

	statuses   []bool
	bets       []int
	stacks     []int
	holeCards  [][]card.Card
	holeFaceUp [][]bool
	anteTotals []int

	streetIndex int // -1 before the first street is reached
	events      []Event
	phase       Phase

	pendingAntes        []int
	pendingBetCollect   bool
	pendingBlinds       []int
	pendingBurn         bool
	pendingHole         []holeDealSlot
	pendingBoard        int
	pendingDiscardSeats []int
	pendingReplacement  map[int]int
	replacementDealing  bool
	pendingShowdown     []int
	pendingHandKilling  []int
	pendingChipsPush    []Pot
	pendingChipsPull    []int
	winnings            map[int]int

	openerIndex       int
	actorQueue        []int
	lastRaiseSize     int
	raiseCount        int
	bringInPending    bool
	completionPending bool
	allInRunout       bool
}

type holeDealSlot struct {
	seat   int
	faceUp bool
}

// New constructs a State from cfg, validating every configuration
// constraint of §4.3 and §7 before any mutation happens.
func New(cfg Config) (*State, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	n := len(cfg.StartingStacks)
	s := &State{
		handTypes:      cfg.HandTypes,
		streets:        cfg.Streets,
		structure:      cfg.Structure,
		antes:          cfg.Antes,
		forcedBets:     cfg.ForcedBets,
		bringIn:        cfg.BringIn,
		anteTrimming:   cfg.AnteTrimming,
		startingStacks: append([]int{}, cfg.StartingStacks...),
		buttonSeat:     cfg.ButtonSeat,
		automation:     cfg.Automation,
		logger:         cfg.Logger,
		numSeats:       n,
		deckQueue:      card.NewQueue(cfg.Deck),
		statuses:       make([]bool, n),
		bets:           make([]int, n),
		stacks:         append([]int{}, cfg.StartingStacks...),
		holeCards:      make([][]card.Card, n),
		holeFaceUp:     make([][]bool, n),
		anteTotals:         make([]int, n),
		streetIndex:        -1,
		pendingReplacement: map[int]int{},
		winnings:           map[int]int{},
		phase:              PhaseAntePosting,
	}
	for i := range s.statuses {
		s.statuses[i] = true
	}
	for i := 0; i < n; i++ {
		if cfg.Antes[i] > 0 {
			s.pendingAntes = append(s.pendingAntes, i)
		}
	}
	if len(s.pendingAntes) == 0 {
		s.phase = PhaseBlindPosting
		s.queueBlinds()
	}
	return s, nil
}

func validateConfig(cfg Config) error {
	if err := validateStreets(cfg.Streets); err != nil {
		return err
	}
	if len(cfg.HandTypes) == 0 || len(cfg.HandTypes) > 2 {
		return configErrorf("hand_types must contain 1 or 2 evaluators")
	}
	n := len(cfg.StartingStacks)
	if n < 2 {
		return configErrorf("at least two players are required")
	}
	if len(cfg.Antes) != n {
		return configErrorf("antes length %d does not match %d seats", len(cfg.Antes), n)
	}
	for i, v := range cfg.StartingStacks {
		if v <= 0 {
			return configErrorf("seat %d starting stack must be positive", i)
		}
	}
	anyForced := cfg.BringIn > 0
	for i, v := range cfg.Antes {
		if v < 0 {
			return configErrorf("seat %d ante must be >= 0", i)
		}
		if v > 0 {
			anyForced = true
		}
	}
	if len(cfg.ForcedBets) != 0 && len(cfg.ForcedBets) != n {
		return configErrorf("forced_bets length %d does not match %d seats", len(cfg.ForcedBets), n)
	}
	for i, v := range cfg.ForcedBets {
		if v < 0 {
			return configErrorf("forced bet %d must be >= 0", i)
		}
		if v > 0 {
			anyForced = true
		}
	}
	if !anyForced {
		return configErrorf("at least one forced bet (ante, blind, straddle, or bring-in) is required")
	}
	if cfg.BringIn > 0 && len(cfg.ForcedBets) > 0 {
		hasBlind := false
		for _, v := range cfg.ForcedBets {
			if v > 0 {
				hasBlind = true
			}
		}
		if hasBlind {
			return configErrorf("bring-in and blinds cannot both be configured")
		}
	}
	if cfg.BringIn > 0 && cfg.BringIn >= cfg.Streets[0].MinRaise {
		return configErrorf("bring-in must be smaller than the first street's small bet")
	}
	if cfg.ButtonSeat < 0 || cfg.ButtonSeat >= n {
		return configErrorf("button seat %d out of range", cfg.ButtonSeat)
	}
	return nil
}

// Seats returns the number of seats at the table.
func (s *State) Seats() int { return s.numSeats }

// Stacks returns a defensive copy of each seat's remaining chips.
func (s *State) Stacks() []int { return append([]int{}, s.stacks...) }

// Bets returns a defensive copy of each seat's current street wager.
func (s *State) Bets() []int { return append([]int{}, s.bets...) }

// Statuses returns a defensive copy of each seat's alive/folded flag.
func (s *State) Statuses() []bool { return append([]bool{}, s.statuses...) }

// Board returns a defensive copy of the public board cards.
func (s *State) Board() []card.Card { return append([]card.Card{}, s.boardCards...) }

// HoleCards returns a defensive copy of seat's hole cards.
func (s *State) HoleCards(seat int) []card.Card { return append([]card.Card{}, s.holeCards[seat]...) }

// Events returns every Event recorded so far, in order.
func (s *State) Events() []Event { return append([]Event{}, s.events...) }

// TotalPot sums every chip not currently in a stack or a live bet (i.e.
// already collected into pot bookkeeping for a completed street).
func (s *State) TotalPot() int {
	total := 0
	for i := 0; i < s.numSeats; i++ {
		total += s.startingStacks[i] - s.stacks[i] - s.bets[i]
	}
	return total
}

func (s *State) aliveCount() int {
	n := 0
	for _, alive := range s.statuses {
		if alive {
			n++
		}
	}
	return n
}

func (s *State) aliveWithChips() []int {
	var out []int
	for i, alive := range s.statuses {
		if alive && s.stacks[i] > 0 {
			out = append(out, i)
		}
	}
	return out
}

// effectiveStack clamps seat's reachable total (§9 supplemented feature
// 2) against the largest total any single alive opponent could still
// contribute.
func (s *State) effectiveStack(seat int) int {
	own := s.stacks[seat] + s.bets[seat]
	maxOpp := 0
	for j := 0; j < s.numSeats; j++ {
		if j == seat || !s.statuses[j] {
			continue
		}
		if total := s.stacks[j] + s.bets[j]; total > maxOpp {
			maxOpp = total
		}
	}
	if maxOpp < own {
		return maxOpp
	}
	return own
}

func (s *State) currentStreet() Street {
	return s.streets[s.streetIndex]
}

func (s *State) emit(e Event) Event {
	s.events = append(s.events, e)
	if s.logger != nil {
		s.logger.Debug("event", "kind", e.Kind.String(), "seat", e.Seat, "amount", e.Amount)
	}
	return e
}
