package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		player   string
		dealer   string
		outcome  Outcome
		payoff   float64
		winnings int
	}{
		{name: "player busts", player: "10s 6h 9d", dealer: "10c 9d", outcome: Lose, winnings: -10},
		{name: "player busts even when dealer busts", player: "10s 6h 9d", dealer: "10c 6d 8h", outcome: Lose, winnings: -10},
		{name: "lower total", player: "10s 7h", dealer: "10c 9d", outcome: Lose, winnings: -10},
		{name: "dealer blackjack beats twenty one", player: "7s 7h 7d", dealer: "As Kd", outcome: Lose, winnings: -10},
		{name: "both blackjack push", player: "As Kh", dealer: "Kd Ac", outcome: Push},
		{name: "equal totals push", player: "10s 8h", dealer: "9c 9d", outcome: Push},
		{name: "full hands push", player: "7s 7h 7d", dealer: "10c 5d 6h", outcome: Push},
		{name: "higher total wins", player: "10s 9h", dealer: "10c 8d", outcome: Win, payoff: 1.0, winnings: 10},
		{name: "dealer busts", player: "10s 2h", dealer: "10c 6d 8h", outcome: Win, payoff: 1.0, winnings: 10},
		{name: "blackjack pays three to two", player: "As Kh", dealer: "10c 8d", outcome: Win, payoff: 1.5, winnings: 15},
		{name: "blackjack beats dealer twenty one", player: "As Kh", dealer: "7c 7d 7h", outcome: Win, payoff: 1.5, winnings: 15},
		{name: "insurance on ace upcard", player: "10s 9h", dealer: "Ac 7d", outcome: Win, payoff: 2.0, winnings: 20},
		{name: "insurance outranks blackjack", player: "As Kh", dealer: "Ac 6d", outcome: Win, payoff: 2.0, winnings: 20},
		{name: "insurance when dealer busts", player: "10s 2h", dealer: "Ac 5d 10h 8s", outcome: Win, payoff: 2.0, winnings: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			p := NewPlayer("Alice", 100, rules)
			require.True(t, p.MakeBet(10))
			hand(t, p, tt.player)
			d := NewDealer(rules)
			hand(t, d, tt.dealer)

			res := Settle(p, d)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.payoff, res.Payoff)
			assert.Equal(t, tt.winnings, res.Winnings)
			assert.Equal(t, 10, res.Bet)
			assert.Zero(t, p.Bet())

			// the balance moves by exactly the reported winnings
			assert.Equal(t, 100+tt.winnings, p.Balance())
		})
	}
}

func TestSettleOddBetRoundsDown(t *testing.T) {
	rules := DefaultRules()
	p := NewPlayer("Alice", 100, rules)
	require.True(t, p.MakeBet(5))
	hand(t, p, "As Qh")
	d := NewDealer(rules)
	hand(t, d, "9c 8d")

	res := Settle(p, d)
	assert.Equal(t, 7, res.Winnings)
	assert.Equal(t, 107, p.Balance())
}
