package game

import (
	"fmt"
	"testing"

	"github.com/lox/blackjack/internal/cards"
)

// stackedSource deals a fixed run of cards and then falls back to twos.
type stackedSource struct {
	cards []cards.Card
	dealt int
}

func stack(t *testing.T, s string) *stackedSource {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("bad card fixture %q: %v", s, err)
	}
	return &stackedSource{cards: cs}
}

func (s *stackedSource) Pick() cards.Card {
	s.dealt++
	if len(s.cards) == 0 {
		return cards.NewCard(cards.Clubs, cards.Two)
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c
}

// scriptedPresenter answers prompts from queues and records notifications.
type scriptedPresenter struct {
	bets    []int
	actions []Action
	again   []bool

	events   []string
	prompted []string
}

func (p *scriptedPresenter) record(format string, args ...any) {
	p.events = append(p.events, fmt.Sprintf(format, args...))
}

func (p *scriptedPresenter) Welcome(dealerName string)      { p.record("welcome %s", dealerName) }
func (p *scriptedPresenter) PromptNumPlayers() (int, error) { return 1, nil }
func (p *scriptedPresenter) PromptCash() (int, error)       { return 100, nil }

func (p *scriptedPresenter) PromptBet(name string, maxBet int) (int, error) {
	p.prompted = append(p.prompted, fmt.Sprintf("bet %s max=%d", name, maxBet))
	if len(p.bets) == 0 {
		return 0, ErrQuit
	}
	b := p.bets[0]
	p.bets = p.bets[1:]
	return b, nil
}

func (p *scriptedPresenter) PromptAction(name string, canDouble, canSplit bool) (Action, error) {
	p.prompted = append(p.prompted, fmt.Sprintf("action %s double=%t split=%t", name, canDouble, canSplit))
	if len(p.actions) == 0 {
		return Stand, nil
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPresenter) PromptNewGame() (bool, error) {
	if len(p.again) == 0 {
		return false, nil
	}
	a := p.again[0]
	p.again = p.again[1:]
	return a, nil
}

func (p *scriptedPresenter) ShowHand(name string, hand cards.Hand, value int) {
	p.record("hand %s [%s] %d", name, hand, value)
}
func (p *scriptedPresenter) ShowCard(card cards.Card)   { p.record("card %s", card) }
func (p *scriptedPresenter) ShowUpcard(card cards.Card) { p.record("upcard %s", card) }
func (p *scriptedPresenter) ShowSplit(first, second cards.Card) {
	p.record("split %s %s", first, second)
}
func (p *scriptedPresenter) ShowSplitHand(name string, first bool) {
	if first {
		p.record("first split %s", name)
	} else {
		p.record("second split %s", name)
	}
}
func (p *scriptedPresenter) ShowSplitResult(name string, net int) {
	p.record("split result %s %d", name, net)
}
func (p *scriptedPresenter) ShowBlackjack(name string)        { p.record("blackjack %s", name) }
func (p *scriptedPresenter) ShowLimit(name string)            { p.record("limit %s", name) }
func (p *scriptedPresenter) ShowBust(name string, value int)  { p.record("bust %s %d", name, value) }
func (p *scriptedPresenter) ShowStand(name string, value int) { p.record("stand %s %d", name, value) }
func (p *scriptedPresenter) ShowInsurance()                   { p.record("insurance") }
func (p *scriptedPresenter) ShowDealerTurn(name string)       { p.record("dealer turn %s", name) }
func (p *scriptedPresenter) ShowDealerBust(name string)       { p.record("dealer bust %s", name) }
func (p *scriptedPresenter) ShowDealerBlackjack()             { p.record("dealer blackjack") }
func (p *scriptedPresenter) ShowWin(name string, amount int)  { p.record("win %s %d", name, amount) }
func (p *scriptedPresenter) ShowLose(name string, amount int) { p.record("lose %s %d", name, amount) }
func (p *scriptedPresenter) ShowPush(name string)             { p.record("push %s", name) }
func (p *scriptedPresenter) ShowBalance(name string, balance int) {
	p.record("balance %s %d", name, balance)
}
func (p *scriptedPresenter) ShowLoan(name, lender string, amount int) {
	p.record("loan %s %s %d", name, lender, amount)
}

func hand(t *testing.T, p HandHolder, s string) {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("bad card fixture %q: %v", s, err)
	}
	for _, c := range cs {
		p.Deal(c)
	}
}
