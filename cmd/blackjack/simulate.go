package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

// SimulateCmd runs headless tables driven by a fixed policy.
type SimulateCmd struct {
	Config   string `short:"c" help:"HCL config file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" type:"path"`
	Tables   int    `short:"t" help:"Independent tables to run" default:"4"`
	Rounds   int    `short:"r" help:"Rounds per table" default:"10000"`
	Players  int    `short:"p" help:"Seats per table" default:"1"`
	Cash     int    `help:"Starting cash per seat (defaults to the stake)"`
	Bet      int    `short:"b" help:"Bet per hand" default:"10"`
	Strategy string `short:"s" help:"Driver policy: ${strategies}" default:"dealer"`
	Seed     int64  `help:"RNG seed (0 for random)" env:"BLACKJACK_SEED"`
	Workers  int    `short:"w" help:"Tables played at once (0 for GOMAXPROCS)"`
	Verbose  bool   `help:"Log to stderr at debug level"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "SIM",
		Level:           log.WarnLevel,
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sim, err := simulator.New(simulator.Config{
		Tables:   c.Tables,
		Rounds:   c.Rounds,
		Players:  c.Players,
		Cash:     c.Cash,
		Bet:      c.Bet,
		Strategy: c.Strategy,
		Seed:     c.Seed,
		Workers:  c.Workers,
		Rules:    cfg.Rules(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Print(report(sim.Config(), stats, time.Since(start)))
	return nil
}

func report(cfg simulator.Config, s *statistics.Statistics, elapsed time.Duration) string {
	var b strings.Builder
	row := func(label, format string, args ...any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		b.WriteString("\n")
	}
	pct := func(n int) string {
		return fmt.Sprintf("%d (%.2f%%)", n, 100*s.Rate(n))
	}

	b.WriteString(titleStyle.Render(" ♠ ♥ Blackjack simulation ♦ ♣ "))
	b.WriteString("\n\n")

	lo, hi := s.ConfidenceInterval95()
	row("Strategy", "%s", cfg.Strategy)
	row("Seed", "%d", cfg.Seed)
	row("Tables", "%d x %d seats", cfg.Tables, cfg.Players)
	row("Rounds", "%d", s.Rounds)
	row("Hands", "%d", s.Hands)
	row("Wagered", "$%d", s.Wagered)
	row("Net", "$%.0f", s.SumNet)
	row("Player edge", "%.3f%%", 100*s.PlayerEdge())
	row("Mean per hand", "%.3f (95%% CI %.3f to %.3f)", s.Mean(), lo, hi)
	row("Median", "%.1f", s.Median())
	row("Std dev", "%.3f", s.StdDev())
	row("Wins", "%s", pct(s.Wins))
	row("Losses", "%s", pct(s.Losses))
	row("Pushes", "%s", pct(s.Pushes))
	row("Blackjacks", "%s", pct(s.Blackjacks))
	row("Busts", "%s", pct(s.Busts))
	row("Insured wins", "%s", pct(s.Insured))
	row("Splits", "%d", s.Splits)
	row("Dealer busts", "%d", s.DealerBusts)
	row("Dealer blackjacks", "%d", s.DealerBlackjacks)
	row("Elapsed", "%s", elapsed.Round(time.Millisecond))
	return b.String()
}
