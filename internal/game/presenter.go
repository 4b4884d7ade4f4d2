package game

import (
	"errors"

	"github.com/lox/blackjack/internal/cards"
)

// ErrQuit is returned by a Presenter prompt when the player asks to leave.
// It ends play between operations, never in the middle of a settlement.
var ErrQuit = errors.New("player quit")

// Presenter is everything the table needs from the outside world. The table
// calls it synchronously and never does I/O of its own.
//
// Prompts own their input validation: PromptBet must only return
// 0 < v <= maxBet and PromptAction must only return an action allowed by
// its flags. Either may return ErrQuit instead.
type Presenter interface {
	Welcome(dealerName string)
	PromptNumPlayers() (int, error)
	PromptCash() (int, error)
	PromptBet(playerName string, maxBet int) (int, error)
	PromptAction(playerName string, canDouble, canSplit bool) (Action, error)
	PromptNewGame() (bool, error)

	ShowHand(name string, hand cards.Hand, value int)
	ShowCard(card cards.Card)
	ShowUpcard(card cards.Card)
	ShowSplit(first, second cards.Card)
	ShowSplitHand(name string, first bool)
	ShowSplitResult(name string, net int)
	ShowBlackjack(name string)
	ShowLimit(name string)
	ShowBust(name string, value int)
	ShowStand(name string, value int)
	ShowInsurance()
	ShowDealerTurn(dealerName string)
	ShowDealerBust(dealerName string)
	ShowDealerBlackjack()
	ShowWin(name string, amount int)
	ShowLose(name string, amount int)
	ShowPush(name string)
	ShowBalance(name string, balance int)
	ShowLoan(name, lender string, amount int)
}
