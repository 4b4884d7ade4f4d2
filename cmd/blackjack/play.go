package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// PlayCmd plays at the console until the players quit.
type PlayCmd struct {
	Config   string   `short:"c" help:"HCL config file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" type:"path"`
	Players  int      `short:"p" help:"Number of players (prompted when unset)"`
	Cash     int      `help:"Starting cash per player (prompted when unset)"`
	Names    []string `short:"n" help:"Player names, in seat order"`
	Seed     int64    `help:"Shuffle seed (0 for random)" env:"BLACKJACK_SEED"`
	LogFile  string   `help:"Debug log file (overrides config)" type:"path"`
	NoLog    bool     `help:"Do not write a debug log file"`
	LogLevel string   `help:"Log level (overrides config)" env:"BLACKJACK_LOG_LEVEL"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	switch {
	case c.NoLog:
		cfg.SetLogFile("")
	case c.LogFile != "":
		cfg.SetLogFile(c.LogFile)
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	logger, closer, err := openLog(cfg.LogFile(), level, "TABLE")
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close debug log", "error", err)
		}
	}()

	rules := cfg.Rules()
	console := display.NewConsole()
	defer console.Goodbye()

	console.Welcome(rules.DealerName)

	players, cash := c.Players, c.Cash
	if players <= 0 {
		if players, err = console.PromptNumPlayers(); err != nil {
			return quitOK(err)
		}
	}
	if cash <= 0 {
		if cash, err = console.PromptCash(); err != nil {
			return quitOK(err)
		}
	}

	logger.Info("Starting game", "players", players, "cash", cash, "seed", c.Seed, "config", c.Config)
	table, err := game.NewTable(rules, players, cash, console,
		game.WithLogger(logger),
		game.WithSeed(c.Seed),
		game.WithPlayerNames(c.Names...),
	)
	if err != nil {
		return fmt.Errorf("failed to set up table: %w", err)
	}

	return table.Run()
}

// quitOK treats a quit during setup as a normal exit.
func quitOK(err error) error {
	if errors.Is(err, game.ErrQuit) {
		return nil
	}
	return err
}
