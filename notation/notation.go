// Package notation converts poker.Event values to and from the external
// hand-history action-notation tokens of §6, and serializes a completed
// hand as a TOML document. The poker core itself never imports this
// package; it is a thin collaborator layered on top (§6 "the core needs
// only to consume/produce these tokens from Events").
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/poker"
)

// Token renders e as an action-notation token, and reports false for
// event kinds §6's table assigns no token (ante/blind posting, bet
// collection, card burning, hand killing, chips pushing/pulling — all
// internal bookkeeping the external codec never sees).
func Token(e poker.Event) (string, bool) {
	switch e.Kind {
	case poker.EventBoardDealt:
		return "d db " + card.FormatCards(e.Cards), true
	case poker.EventHoleDealt:
		return fmt.Sprintf("d dh p%d %s", e.Seat+1, card.FormatCards(e.Cards)), true
	case poker.EventDiscarded, poker.EventStoodPat:
		tok := fmt.Sprintf("p%d sd", e.Seat+1)
		if len(e.Cards) > 0 {
			tok += " " + card.FormatCards(e.Cards)
		}
		return tok, true
	case poker.EventBringInPosted:
		return fmt.Sprintf("p%d pb", e.Seat+1), true
	case poker.EventFolded:
		return fmt.Sprintf("p%d f", e.Seat+1), true
	case poker.EventCheckedOrCalled:
		return fmt.Sprintf("p%d cc", e.Seat+1), true
	case poker.EventRaisedTo:
		return fmt.Sprintf("p%d cbr %d", e.Seat+1, e.Amount), true
	case poker.EventShown, poker.EventMucked:
		tok := fmt.Sprintf("p%d sm", e.Seat+1)
		if len(e.Cards) > 0 {
			tok += " " + card.FormatCards(e.Cards)
		}
		return tok, true
	default:
		return "", false
	}
}

// Tokens renders every event in events that has a token, in order.
func Tokens(events []poker.Event) []string {
	var out []string
	for _, e := range events {
		if tok, ok := Token(e); ok {
			out = append(out, tok)
		}
	}
	return out
}

// Action is one parsed action-notation token, ready to drive against a
// poker.State. Seat is 0-indexed (the token's p<N> is 1-indexed); for
// d dh it is the receiving player, and it is -1 for d db.
type Action struct {
	Verb  string // db, dh, sd, pb, f, cc, cbr, sm
	Seat  int
	Cards []card.Card
	Amount int
}

// ParseToken parses one action-notation token of §6's table.
func ParseToken(tok string) (Action, error) {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("notation: empty token")
	}

	if fields[0] == "d" {
		if len(fields) < 2 {
			return Action{}, fmt.Errorf("notation: malformed dealer token %q", tok)
		}
		switch fields[1] {
		case "db":
			cards, err := parseCardsField(fields, 2)
			if err != nil {
				return Action{}, err
			}
			return Action{Verb: "db", Seat: -1, Cards: cards}, nil
		case "dh":
			if len(fields) < 3 {
				return Action{}, fmt.Errorf("notation: malformed deal-hole token %q", tok)
			}
			seat, err := parseSeat(fields[2])
			if err != nil {
				return Action{}, err
			}
			cards, err := parseCardsField(fields, 3)
			if err != nil {
				return Action{}, err
			}
			return Action{Verb: "dh", Seat: seat, Cards: cards}, nil
		default:
			return Action{}, fmt.Errorf("notation: unknown dealer verb %q", fields[1])
		}
	}

	seat, err := parseSeat(fields[0])
	if err != nil {
		return Action{}, err
	}
	if len(fields) < 2 {
		return Action{}, fmt.Errorf("notation: malformed token %q", tok)
	}
	switch fields[1] {
	case "sd", "sm":
		cards, err := parseCardsField(fields, 2)
		if err != nil {
			return Action{}, err
		}
		return Action{Verb: fields[1], Seat: seat, Cards: cards}, nil
	case "pb", "f", "cc":
		return Action{Verb: fields[1], Seat: seat}, nil
	case "cbr":
		if len(fields) != 3 {
			return Action{}, fmt.Errorf("notation: cbr token %q missing amount", tok)
		}
		amount, err := strconv.Atoi(fields[2])
		if err != nil {
			return Action{}, fmt.Errorf("notation: cbr token %q: %w", tok, err)
		}
		return Action{Verb: "cbr", Seat: seat, Amount: amount}, nil
	default:
		return Action{}, fmt.Errorf("notation: unknown player verb %q", fields[1])
	}
}

func parseSeat(token string) (int, error) {
	if !strings.HasPrefix(token, "p") {
		return 0, fmt.Errorf("notation: %q is not a player token", token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return 0, fmt.Errorf("notation: %q: %w", token, err)
	}
	return n - 1, nil
}

func parseCardsField(fields []string, idx int) ([]card.Card, error) {
	if idx >= len(fields) {
		return nil, nil
	}
	return card.ParseCards(fields[idx])
}

// Apply drives a (seat, action) decision described by a already-parsed
// Action against s, dispatching to the matching poker.State verb. Dealer
// actions (db, dh) deal only the first card the token lists, located in
// the deck queue or burn pile (§9 supplemented feature 5); with no card
// listed they deal the queue head. A listed card found in neither place,
// "??" included, makes Apply return an error rather than dealing the
// queue head. The caller is responsible for calling Apply once per
// pending dealer slot.
func Apply(s *poker.State, a Action) (poker.Event, error) {
	switch a.Verb {
	case "db":
		var known *card.Card
		if len(a.Cards) > 0 {
			known = &a.Cards[0]
		}
		return s.DealBoard(known)
	case "dh":
		var known *card.Card
		if len(a.Cards) > 0 {
			known = &a.Cards[0]
		}
		return s.DealHole(known)
	case "sd":
		return s.Discard(a.Seat, a.Cards)
	case "pb":
		return s.PostBringIn(a.Seat)
	case "f":
		return s.Fold(a.Seat)
	case "cc":
		return s.CheckOrCall(a.Seat)
	case "cbr":
		return s.CompleteBetOrRaiseTo(a.Seat, a.Amount)
	case "sm":
		if len(a.Cards) > 0 {
			return s.Show(a.Seat)
		}
		return s.Muck(a.Seat)
	default:
		return poker.Event{}, fmt.Errorf("notation: no state verb for action %q", a.Verb)
	}
}

// Document is the TOML hand-history document of §6 "Persisted state":
// every configuration field a fresh State needs plus the ordered action
// tape, sufficient for a collaborator to reconstruct the exact same hand.
type Document struct {
	Variant            string `toml:"variant"`
	AnteTrimming       bool   `toml:"ante_trimming"`
	Antes              []int  `toml:"antes"`
	BlindsOrStraddles  []int  `toml:"blinds_or_straddles"`
	BringIn            int    `toml:"bring_in"`
	SmallBet           int    `toml:"small_bet"`
	BigBet             int    `toml:"big_bet"`
	MinBet             int    `toml:"min_bet"`
	StartingStacks     []int  `toml:"starting_stacks"`
	Actions            []string `toml:"actions"`
}

// Encode renders doc as a TOML document.
func Encode(doc Document) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(doc); err != nil {
		return "", fmt.Errorf("notation: encoding hand history: %w", err)
	}
	return b.String(), nil
}

// Decode parses a TOML hand-history document produced by Encode.
func Decode(data string) (Document, error) {
	var doc Document
	if _, err := toml.Decode(data, &doc); err != nil {
		return Document{}, fmt.Errorf("notation: decoding hand history: %w", err)
	}
	return doc, nil
}
