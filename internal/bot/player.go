package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

// Player drives every seat at a table with one strategy. It satisfies
// game.Presenter, so a table can run with no terminal attached.
type Player struct {
	rules    game.Rules
	strategy Strategy
	bet      int
	logger   *log.Logger

	hand  cards.Hand
	value int
}

var _ game.Presenter = (*Player)(nil)

// NewPlayer bets bet every round, or the whole balance when that is less.
func NewPlayer(strategy Strategy, rules game.Rules, bet int, logger *log.Logger) *Player {
	return &Player{
		rules:    rules,
		strategy: strategy,
		bet:      bet,
		logger:   logger.WithPrefix("bot"),
	}
}

// Strategy returns the strategy driving the seats.
func (p *Player) Strategy() Strategy {
	return p.strategy
}

func (p *Player) Welcome(string) {}

func (p *Player) PromptNumPlayers() (int, error) { return 1, nil }

func (p *Player) PromptCash() (int, error) { return p.rules.Stake, nil }

func (p *Player) PromptBet(name string, maxBet int) (int, error) {
	return min(p.bet, maxBet), nil
}

func (p *Player) PromptAction(name string, canDouble, canSplit bool) (game.Action, error) {
	action := p.strategy.Decide(Situation{
		Hand:      p.hand,
		Value:     p.value,
		CanDouble: canDouble,
		CanSplit:  canSplit,
		Rules:     p.rules,
	})
	if !action.Allowed(canDouble, canSplit) {
		p.logger.Warn("Strategy chose an illegal action, standing", "strategy", p.strategy.Name(), "action", action)
		action = game.Stand
	}
	p.logger.Debug("Decision", "player", name, "hand", p.hand, "value", p.value, "action", action)
	return action, nil
}

// PromptNewGame always declines. Simulations call PlayRound directly.
func (p *Player) PromptNewGame() (bool, error) {
	return false, nil
}

// ShowHand remembers the hand; the table always shows the acting hand
// right before prompting for it.
func (p *Player) ShowHand(name string, hand cards.Hand, value int) {
	p.hand = hand
	p.value = value
}

func (p *Player) ShowUpcard(cards.Card) {}

func (p *Player) ShowCard(cards.Card)                {}
func (p *Player) ShowSplit(first, second cards.Card) {}
func (p *Player) ShowSplitHand(string, bool)         {}
func (p *Player) ShowSplitResult(string, int)        {}
func (p *Player) ShowBlackjack(string)               {}
func (p *Player) ShowLimit(string)                   {}
func (p *Player) ShowBust(string, int)               {}
func (p *Player) ShowStand(string, int)              {}
func (p *Player) ShowInsurance()                     {}
func (p *Player) ShowDealerTurn(string)              {}
func (p *Player) ShowDealerBust(string)              {}
func (p *Player) ShowDealerBlackjack()               {}

func (p *Player) ShowWin(name string, amount int) {
	p.logger.Debug("Won", "player", name, "amount", amount)
}

func (p *Player) ShowLose(name string, amount int) {
	p.logger.Debug("Lost", "player", name, "amount", amount)
}

func (p *Player) ShowPush(name string) {}

func (p *Player) ShowBalance(name string, balance int) {}

func (p *Player) ShowLoan(name, lender string, amount int) {
	p.logger.Info("Seat borrowed", "player", name, "lender", lender, "amount", amount)
}
