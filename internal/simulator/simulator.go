// Package simulator plays many headless rounds in parallel and aggregates
// the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Tables   int    // independent tables, each with its own shoe
	Rounds   int    // rounds per table
	Players  int    // seats per table
	Cash     int    // starting balance per seat
	Bet      int    // bet per hand, capped by balance
	Strategy string // see bot.Strategies
	Seed     int64  // zero picks a seed from the clock
	Workers  int    // tables played at once; zero means GOMAXPROCS
	Rules    game.Rules
	Logger   *log.Logger
}

// Simulator runs blackjack simulations
type Simulator struct {
	config Config
}

// New creates a new simulator, filling in defaults for unset fields
func New(config Config) (*Simulator, error) {
	if config.Tables < 1 {
		config.Tables = 1
	}
	if config.Players < 1 {
		config.Players = 1
	}
	if config.Workers < 1 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Strategy == "" {
		config.Strategy = "dealer"
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Cash == 0 {
		config.Cash = config.Rules.Stake
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	var errs []error
	if config.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %d", config.Rounds))
	}
	if config.Bet < 1 {
		errs = append(errs, fmt.Errorf("bet must be positive, got %d", config.Bet))
	}
	if config.Cash < 0 {
		errs = append(errs, fmt.Errorf("cash cannot be negative, got %d", config.Cash))
	}
	if err := config.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := bot.NewStrategy(config.Strategy, nil); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return &Simulator{config: config}, nil
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config {
	return s.config
}

// Run plays every table and returns the merged statistics. The first table
// to fail cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]*statistics.Statistics, s.config.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Tables {
		g.Go(func() error {
			stats, err := s.playTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i+1, err)
			}
			results[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "tables", s.config.Tables, "rounds", total.Rounds,
		"hands", total.Hands, "edge", fmt.Sprintf("%.4f", total.PlayerEdge()))
	return total, nil
}

// playTable runs one table for the configured number of rounds, checking
// after each that no money was created or destroyed.
func (s *Simulator) playTable(ctx context.Context, index int) (*statistics.Statistics, error) {
	seed := randutil.Derive(s.config.Seed, index)
	logger := s.config.Logger.With("table", index+1)

	strategy, err := bot.NewStrategy(s.config.Strategy, randutil.New(seed^1))
	if err != nil {
		return nil, err
	}
	player := bot.NewPlayer(strategy, s.config.Rules, s.config.Bet, logger)

	table, err := game.NewTable(s.config.Rules, s.config.Players, s.config.Cash, player,
		game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	net := make([]int, s.config.Players)

	for range s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := table.PlayRound()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", table.Round(), err)
		}
		stats.AddRound(result)

		for i, seat := range result.Seats {
			net[i] += seat.Net
			if want := s.config.Cash + seat.Loaned + net[i]; seat.Balance != want {
				return nil, fmt.Errorf("round %d: %s holds %d, expected %d (cash %d, loaned %d, net %d)",
					result.Number, seat.Name, seat.Balance, want, s.config.Cash, seat.Loaned, net[i])
			}
		}
	}

	logger.Debug("Table finished", "rounds", stats.Rounds, "hands", stats.Hands, "net", stats.SumNet)
	return stats, nil
}
