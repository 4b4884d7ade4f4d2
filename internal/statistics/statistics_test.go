package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Zero(t, stats.PlayerEdge())
	assert.Zero(t, stats.Rate(3))
	assert.Error(t, stats.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	stats := &Statistics{}
	hands := []game.HandResult{
		{Bet: 10, Outcome: game.Win, Payoff: 1.0, Winnings: 10},
		{Bet: 20, Outcome: game.Lose, Busted: true, Winnings: -20},
		{Bet: 10, Outcome: game.Win, Payoff: 1.5, Blackjack: true, Winnings: 15},
		{Bet: 10, Outcome: game.Push},
		{Bet: 10, Outcome: game.Win, Payoff: 2.0, Winnings: 20},
	}
	for _, h := range hands {
		stats.Add(h)
	}

	assert.Equal(t, 5, stats.Hands)
	assert.Equal(t, 3, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Pushes)
	assert.Equal(t, 1, stats.Blackjacks)
	assert.Equal(t, 1, stats.Busts)
	assert.Equal(t, 1, stats.Insured)
	assert.Equal(t, 60, stats.Wagered)

	assert.InDelta(t, 5.0, stats.Mean(), 1e-9)
	assert.InDelta(t, 10.0, stats.Median(), 1e-9)
	assert.InDelta(t, 25.0/60.0, stats.PlayerEdge(), 1e-9)
	assert.InDelta(t, 0.2, stats.Rate(stats.Pushes), 1e-9)

	// values: 10 -20 15 0 20, mean 5, squared deviations 25 625 100 25 225
	assert.InDelta(t, 250.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(250), stats.StdDev(), 1e-9)

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())

	require.NoError(t, stats.Validate())
}

func TestStatisticsPercentile(t *testing.T) {
	stats := &Statistics{}
	for _, w := range []int{-10, 0, 10, 20, 30} {
		stats.Add(game.HandResult{Bet: 10, Outcome: game.Push, Winnings: w})
	}

	assert.InDelta(t, -10.0, stats.Percentile(0), 1e-9)
	assert.InDelta(t, 10.0, stats.Percentile(0.5), 1e-9)
	assert.InDelta(t, 30.0, stats.Percentile(1), 1e-9)
	assert.InDelta(t, 15.0, stats.Percentile(0.625), 1e-9)
}

func TestStatisticsAddRound(t *testing.T) {
	stats := &Statistics{}
	stats.AddRound(&game.RoundResult{
		DealerValue: 24,
		DealerBust:  true,
		DealerDrawn: 1,
		Seats: []game.SeatResult{
			{Name: "a", Hands: []game.HandResult{
				{Bet: 10, Outcome: game.Win, Payoff: 1, Winnings: 10},
				{Bet: 10, Outcome: game.Lose, Busted: true, Winnings: -10},
			}},
			{Name: "b", Hands: []game.HandResult{
				{Bet: 10, Outcome: game.Win, Payoff: 1, Winnings: 10},
			}},
		},
	})
	stats.AddRound(&game.RoundResult{
		DealerValue:   14,
		DealerSkipped: true,
		Seats: []game.SeatResult{
			{Name: "a", Hands: []game.HandResult{{Bet: 10, Outcome: game.Lose, Busted: true, Winnings: -10}}},
		},
	})

	assert.Equal(t, 2, stats.Rounds)
	assert.Equal(t, 4, stats.Hands)
	assert.Equal(t, 1, stats.Splits)
	assert.Equal(t, 1, stats.DealerBusts)
	assert.Equal(t, 1, stats.DealerSkips)
	assert.Zero(t, stats.DealerBlackjacks)
	require.NoError(t, stats.Validate())
}

func TestStatisticsMerge(t *testing.T) {
	a, b := &Statistics{}, &Statistics{}
	a.Add(game.HandResult{Bet: 10, Outcome: game.Win, Payoff: 1, Winnings: 10})
	b.Add(game.HandResult{Bet: 10, Outcome: game.Lose, Winnings: -10})
	b.Add(game.HandResult{Bet: 10, Outcome: game.Push})

	a.Merge(b)

	assert.Equal(t, 3, a.Hands)
	assert.Equal(t, 30, a.Wagered)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, 1, a.Pushes)
	assert.Zero(t, a.Mean())
	require.NoError(t, a.Validate())
}

func TestStatisticsValidateLedgerMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(game.HandResult{Bet: 10, Outcome: game.Win, Payoff: 1, Winnings: 10})
	stats.SumNet = 99

	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
}
