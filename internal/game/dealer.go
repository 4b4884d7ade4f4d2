package game

import "github.com/lox/blackjack/internal/cards"

// Dealer holds the house hand. It never wagers, so it has no betting,
// doubling, splitting or settlement methods; the table drives its draws.
type Dealer struct {
	holding
}

// NewDealer creates the dealer for rules.
func NewDealer(rules Rules) *Dealer {
	return &Dealer{holding: holding{name: rules.DealerName, rules: rules}}
}

// Upcard returns the first card dealt, the one players can see.
func (d *Dealer) Upcard() (cards.Card, bool) {
	if len(d.cards) == 0 {
		return cards.Card{}, false
	}
	return d.cards[0], true
}

// UpcardIsAce reports whether the visible card is an Ace, which triggers
// insurance on player wins.
func (d *Dealer) UpcardIsAce() bool {
	c, ok := d.Upcard()
	return ok && c.IsAce()
}

// AtSoftLimit reports whether the hand has reached the soft limit. It is
// independent of whether the hand is busted.
func (d *Dealer) AtSoftLimit() bool {
	return d.Value() >= d.rules.SoftLimit
}

// ShouldDraw is the house drawing rule.
func (d *Dealer) ShouldDraw() bool {
	return !d.Busted() && !d.AtSoftLimit()
}

// ClearHand empties the dealer's hand.
func (d *Dealer) ClearHand() {
	d.reset()
}
