package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerengine/notation"
	"github.com/lox/pokerengine/poker"
	"github.com/lox/pokerengine/preset"
)

type CLI struct {
	Config   string `short:"c" help:"Path to the .hcl table config" default:"table.hcl"`
	LogLevel string `help:"Set the log-level" enum:"debug,info,warn,error" default:"info"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "error", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Level: level})

	table, err := LoadTableConfig(cli.Config)
	if err != nil {
		logger.Fatal("failed to load table config", "error", err)
	}

	s, err := buildState(*table, logger)
	if err != nil {
		logger.Fatal("failed to build hand", "error", err)
	}

	if err := replay(s, *table, logger); err != nil {
		logger.Fatal("replay failed", "error", err)
	}

	fmt.Println("final stacks:", s.Stacks())
	ctx.Exit(0)
}

// fullAutomation drives every phase except the action-notation tape
// itself: antes, blinds, dealing, showdown decisions, hand-killing, and
// chip movement all happen between action tokens without operator input.
const fullAutomation = poker.AutoAntePosting | poker.AutoBetCollection | poker.AutoBlindPosting |
	poker.AutoHoleDealing | poker.AutoCardBurning | poker.AutoBoardDealing |
	poker.AutoShowdownDecisions | poker.AutoHandKilling | poker.AutoChipsPushing | poker.AutoChipsPulling

func buildState(table TableConfig, logger *log.Logger) (*poker.State, error) {
	t := table
	var cfg poker.Config
	switch t.Variant {
	case "kuhn":
		cfg = preset.Kuhn(t.StartingStacks, t.Ante, t.MinBet, t.ButtonSeat)
	case "holdem":
		antes := make([]int, len(t.StartingStacks))
		for i := range antes {
			antes[i] = t.Ante
		}
		cfg = preset.TexasHoldem(t.StartingStacks, antes, t.SmallBlind, t.BigBlind, t.ButtonSeat)
	case "shortdeck":
		cfg = preset.ShortDeckHoldem(t.StartingStacks, t.Ante, t.ButtonAnte, t.SmallBlind, t.BigBlind, t.ButtonSeat)
	case "omaha":
		cfg = preset.Omaha(t.StartingStacks, t.SmallBlind, t.BigBlind, t.ButtonSeat)
	case "omahahilo":
		cfg = preset.OmahaHiLo(t.StartingStacks, t.SmallBlind, t.BigBlind, t.ButtonSeat)
	case "stud":
		cfg = preset.SevenCardStud(t.StartingStacks, t.Ante, t.BringIn, t.SmallBet, t.BigBet, t.ButtonSeat)
	case "razz":
		cfg = preset.Razz(t.StartingStacks, t.Ante, t.BringIn, t.SmallBet, t.BigBet, t.ButtonSeat)
	case "badugi":
		cfg = preset.Badugi(t.StartingStacks, t.SmallBlind, t.BigBlind, t.SmallBet, t.BigBet, t.ButtonSeat)
	case "tripledraw":
		cfg = preset.TripleDraw(t.StartingStacks, t.SmallBlind, t.BigBlind, t.SmallBet, t.BigBet, t.ButtonSeat)
	default:
		return nil, fmt.Errorf("unsupported variant %q", t.Variant)
	}
	cfg.Automation = fullAutomation
	cfg.Logger = logger
	return poker.New(cfg)
}

// replay drives every automated phase action to completion between each
// player-supplied action token, the way a hand-history collaborator
// replays a notation tape through a fresh State (§6, §8 property 6).
func replay(s *poker.State, table TableConfig, logger *log.Logger) error {
	if _, err := s.RunAutomated(); err != nil {
		return err
	}
	for _, tok := range table.Actions {
		action, err := notation.ParseToken(tok)
		if err != nil {
			return err
		}
		e, err := notation.Apply(s, action)
		if err != nil {
			return fmt.Errorf("applying %q: %w", tok, err)
		}
		logger.Info("event", "kind", e.Kind.String(), "seat", e.Seat, "amount", e.Amount)
		if _, err := s.RunAutomated(); err != nil {
			return err
		}
	}
	return nil
}
