// Package config loads table rules and logging settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// Config represents the complete configuration file
type Config struct {
	Table *TableConfig `hcl:"table,block"`
	Log   *LogConfig   `hcl:"log,block"`
}

// TableConfig holds the house rules. Unset values take the defaults.
type TableConfig struct {
	BustLimit    int    `hcl:"bust_limit,optional"`
	SoftLimit    int    `hcl:"soft_limit,optional"`
	InitialCards int    `hcl:"initial_cards,optional"`
	Packs        int    `hcl:"packs,optional"`
	Stake        int    `hcl:"stake,optional"`
	Peek         *bool  `hcl:"peek,optional"`
	DealerName   string `hcl:"dealer_name,optional"`
	LoanShark    string `hcl:"loan_shark,optional"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Level string  `hcl:"level,optional"`
	File  *string `hcl:"file,optional"` // an empty string turns the file log off
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	rules := game.DefaultRules()
	peek := rules.Peek
	file := "blackjack.log"
	return &Config{
		Table: &TableConfig{
			BustLimit:    rules.BustLimit,
			SoftLimit:    rules.SoftLimit,
			InitialCards: rules.InitialCards,
			Packs:        rules.Packs,
			Stake:        rules.Stake,
			Peek:         &peek,
			DealerName:   rules.DealerName,
			LoanShark:    rules.LoanShark,
		},
		Log: &LogConfig{
			Level: "info",
			File:  &file,
		},
	}
}

// Load reads filename. A missing file is not an error; the defaults are
// returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Table == nil {
		c.Table = def.Table
	}
	if c.Log == nil {
		c.Log = def.Log
	}

	t, d := c.Table, def.Table
	if t.BustLimit == 0 {
		t.BustLimit = d.BustLimit
	}
	if t.SoftLimit == 0 {
		t.SoftLimit = d.SoftLimit
	}
	if t.InitialCards == 0 {
		t.InitialCards = d.InitialCards
	}
	if t.Stake == 0 {
		t.Stake = d.Stake
	}
	if t.Peek == nil {
		t.Peek = d.Peek
	}
	if t.DealerName == "" {
		t.DealerName = d.DealerName
	}
	if t.LoanShark == "" {
		t.LoanShark = d.LoanShark
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == nil {
		c.Log.File = def.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Rules converts the table block into game rules.
func (c *Config) Rules() game.Rules {
	t := c.Table
	peek := false
	if t.Peek != nil {
		peek = *t.Peek
	}
	return game.Rules{
		BustLimit:    t.BustLimit,
		SoftLimit:    t.SoftLimit,
		InitialCards: t.InitialCards,
		Packs:        t.Packs,
		Stake:        t.Stake,
		Peek:         peek,
		DealerName:   t.DealerName,
		LoanShark:    t.LoanShark,
	}
}

// LogFile returns the debug log path. Empty means no file log.
func (c *Config) LogFile() string {
	if c.Log == nil || c.Log.File == nil {
		return ""
	}
	return *c.Log.File
}

// SetLogFile overrides the debug log path.
func (c *Config) SetLogFile(path string) {
	c.Log.File = &path
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(c.Log.Level))
}
