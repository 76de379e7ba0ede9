package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableConfig describes one hand to replay: the variant's starting
// parameters plus the ordered action-notation tape that drives it. Only
// the fields a given variant's preset factory needs are read; the rest
// are left at their zero value.
type TableConfig struct {
	Variant        string   `hcl:"variant"`
	StartingStacks []int    `hcl:"starting_stacks"`
	Ante           int      `hcl:"ante,optional"`
	ButtonAnte     int      `hcl:"button_ante,optional"`
	SmallBlind     int      `hcl:"small_blind,optional"`
	BigBlind       int      `hcl:"big_blind,optional"`
	SmallBet       int      `hcl:"small_bet,optional"`
	BigBet         int      `hcl:"big_bet,optional"`
	BringIn        int      `hcl:"bring_in,optional"`
	MinBet         int      `hcl:"min_bet,optional"`
	ButtonSeat     int      `hcl:"button_seat,optional"`
	Actions        []string `hcl:"actions"`
}

// LoadTableConfig parses an .hcl file holding a single top-level
// `table { ... }` block, the way internal/server/config.go loads its
// ServerConfig.
func LoadTableConfig(filename string) (*TableConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var wrapper struct {
		Table TableConfig `hcl:"table,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &wrapper)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &wrapper.Table, nil
}
