package bot

import (
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

func situation(hand string, canDouble, canSplit bool) Situation {
	rules := game.DefaultRules()
	h := cards.Hand(cards.MustParseCards(hand))
	return Situation{
		Hand:      h,
		Value:     h.Value(rules.BustLimit),
		CanDouble: canDouble,
		CanSplit:  canSplit,
		Rules:     rules,
	}
}

func TestDealerBot(t *testing.T) {
	assert.Equal(t, game.Hit, DealerBot{}.Decide(situation("10s 6h", true, false)))
	assert.Equal(t, game.Stand, DealerBot{}.Decide(situation("10s 7h", true, false)))
	assert.Equal(t, game.Stand, DealerBot{}.Decide(situation("As 6h", true, false)))
}

func TestStandBot(t *testing.T) {
	assert.Equal(t, game.Stand, StandBot{}.Decide(situation("2s 3h", true, true)))
}

func TestRandBotOnlyPicksLegalActions(t *testing.T) {
	bot := NewRandBot(rand.New(rand.NewPCG(1, 2)))
	seen := map[game.Action]bool{}
	for range 200 {
		action := bot.Decide(situation("10s 6h", false, false))
		require.True(t, action.Allowed(false, false), "got %v", action)
		seen[action] = true
	}
	assert.Len(t, seen, 2)
}

func TestNewStrategy(t *testing.T) {
	for _, name := range Strategies {
		s, err := NewStrategy(name, rand.New(rand.NewPCG(1, 2)))
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := NewStrategy("martingale", nil)
	assert.ErrorContains(t, err, "unknown strategy")
}

type illegalStrategy struct{}

func (illegalStrategy) Name() string                 { return "illegal" }
func (illegalStrategy) Decide(Situation) game.Action { return game.Split }

func TestPlayerPresenter(t *testing.T) {
	logger := log.New(io.Discard)
	rules := game.DefaultRules()

	t.Run("bet is capped by balance", func(t *testing.T) {
		p := NewPlayer(StandBot{}, rules, 25, logger)
		bet, err := p.PromptBet("Player 1", 10)
		require.NoError(t, err)
		assert.Equal(t, 10, bet)

		bet, err = p.PromptBet("Player 1", 100)
		require.NoError(t, err)
		assert.Equal(t, 25, bet)
	})

	t.Run("decides on the last shown hand", func(t *testing.T) {
		p := NewPlayer(DealerBot{}, rules, 10, logger)
		p.ShowHand("Player 1", cards.MustParseCards("10s 6h"), 16)
		action, err := p.PromptAction("Player 1", true, false)
		require.NoError(t, err)
		assert.Equal(t, game.Hit, action)

		p.ShowHand("Player 1", cards.MustParseCards("10s 6h 2c"), 18)
		action, err = p.PromptAction("Player 1", false, false)
		require.NoError(t, err)
		assert.Equal(t, game.Stand, action)
	})

	t.Run("illegal choice falls back to stand", func(t *testing.T) {
		p := NewPlayer(illegalStrategy{}, rules, 10, logger)
		p.ShowHand("Player 1", cards.MustParseCards("6s 5h"), 11)

		action, err := p.PromptAction("Player 1", true, false)
		require.NoError(t, err)
		assert.Equal(t, game.Stand, action)
	})

	t.Run("never asks for another round", func(t *testing.T) {
		p := NewPlayer(StandBot{}, rules, 10, logger)
		again, err := p.PromptNewGame()
		require.NoError(t, err)
		assert.False(t, again)
	})
}
