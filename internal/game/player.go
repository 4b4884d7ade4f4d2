package game

import (
	"errors"
	"math"
)

var (
	// ErrCannotSplit is returned by Split when CanSplit is false.
	ErrCannotSplit = errors.New("hand cannot be split")
	// ErrCannotDouble is returned by Double when CanDouble is false.
	ErrCannotDouble = errors.New("hand cannot be doubled")
)

// Bettor is the capability set of a seated player: a hand holder that can
// wager, act on its hand and be settled. The dealer does not implement it.
type Bettor interface {
	HandHolder
	Bet() int
	Balance() int
	MakeBet(amount int) bool
	CanDouble() bool
	Double() error
	CanSplit() bool
	Split() (*Player, error)
	Stand()
	Standing() bool
	Win(payoff float64)
	Lose()
	Push()
}

var (
	_ Bettor     = (*Player)(nil)
	_ HandHolder = (*Dealer)(nil)
)

// Player is one betting hand at the table. The bet is reserved out of the
// balance when it is placed, so balance+bet is the player's total money
// until the hand is settled.
type Player struct {
	holding

	balance   *Balance
	bet       int
	loaned    int
	standing  bool
	split     bool
	firstHand bool
}

// NewPlayer creates a player holding cash under rules.
func NewPlayer(name string, cash int, rules Rules) *Player {
	return &Player{
		holding:   holding{name: name, rules: rules},
		balance:   NewBalance(cash),
		firstHand: true,
	}
}

// Bet returns the amount currently wagered on this hand.
func (p *Player) Bet() int {
	return p.bet
}

// Balance returns the unreserved money in the player's balance cell.
func (p *Player) Balance() int {
	return p.balance.Amount()
}

// Loaned returns the total stake lent to this player so far.
func (p *Player) Loaned() int {
	return p.loaned
}

// Standing reports whether the hand has finished acting.
func (p *Player) Standing() bool {
	return p.standing
}

// IsSplit reports whether this hand is half of a split pair.
func (p *Player) IsSplit() bool {
	return p.split
}

// IsFirstHand is false only for the twin created by a split.
func (p *Player) IsFirstHand() bool {
	return p.firstHand
}

// SharesBalanceWith reports whether p and other draw on the same balance cell.
func (p *Player) SharesBalanceWith(other *Player) bool {
	return other != nil && p.balance == other.balance
}

// MakeBet wagers amount on the hand. Any bet already placed is folded back
// in first, so a player may change their bet before the deal. It fails,
// changing nothing, unless 0 < amount <= balance+bet.
func (p *Player) MakeBet(amount int) bool {
	if amount <= 0 || amount > p.balance.Amount()+p.bet {
		return false
	}
	p.balance.debit(amount - p.bet)
	p.bet = amount
	return true
}

// TopUp lends stake to a player whose balance is exactly zero. It reports
// whether the loan was made.
func (p *Player) TopUp(stake int) bool {
	if p.balance.Amount() != 0 || stake <= 0 {
		return false
	}
	p.balance.credit(stake)
	p.loaned += stake
	return true
}

// CanSplit reports whether the hand is an unsplit pair of equal value and
// the balance can cover a matching bet on the twin.
func (p *Player) CanSplit() bool {
	return !p.split &&
		len(p.cards) == 2 &&
		p.cards[0].Value() == p.cards[1].Value() &&
		p.balance.Amount() >= p.bet
}

// Split moves the second card onto a new twin hand that shares this player's
// balance, and places a matching bet on the twin.
func (p *Player) Split() (*Player, error) {
	if !p.CanSplit() {
		return nil, ErrCannotSplit
	}

	twin := &Player{
		holding: holding{name: p.name, rules: p.rules},
		balance: p.balance,
		split:   true,
	}
	p.split = true

	last := len(p.cards) - 1
	twin.Deal(p.cards[last])
	p.cards = p.cards[:last]

	if !twin.MakeBet(p.bet) {
		// CanSplit guaranteed the funds; undo rather than leave a half split
		p.cards = append(p.cards, twin.cards[0])
		p.split = false
		return nil, ErrCannotSplit
	}
	return twin, nil
}

// CanDouble reports whether the hand has its first two cards and the balance
// can cover doubling the bet.
func (p *Player) CanDouble() bool {
	return len(p.cards) == 2 && p.balance.Amount() >= p.bet
}

// Double reserves a second bet of equal size.
func (p *Player) Double() error {
	if !p.CanDouble() {
		return ErrCannotDouble
	}
	p.balance.debit(p.bet)
	p.bet *= 2
	return nil
}

// Stand ends the hand's turn.
func (p *Player) Stand() {
	p.standing = true
}

// Win pays the bet back plus payoff times the bet, rounded down.
func (p *Player) Win(payoff float64) {
	p.balance.credit(int(math.Floor((1 + payoff) * float64(p.bet))))
	p.bet = 0
}

// Lose forfeits the bet. The money already left the balance when the bet
// was placed.
func (p *Player) Lose() {
	p.bet = 0
}

// Push refunds the bet.
func (p *Player) Push() {
	p.balance.credit(p.bet)
	p.bet = 0
}

// ClearHand readies the player for a new round. Any bet still outstanding is
// refunded, so a hand that was never settled costs nothing.
func (p *Player) ClearHand() {
	p.balance.credit(p.bet)
	p.bet = 0
	p.reset()
	p.standing = false
	p.split = false
}
