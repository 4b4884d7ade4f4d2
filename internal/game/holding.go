package game

import "github.com/lox/blackjack/internal/cards"

// HandHolder is the capability shared by players and the dealer: holding and
// scoring cards.
type HandHolder interface {
	Name() string
	Deal(card cards.Card)
	Hand() cards.Hand
	Value() int
	Busted() bool
	Blackjack() bool
	ClearHand()
}

// holding is the hand state embedded by Player and Dealer.
type holding struct {
	name  string
	rules Rules
	cards cards.Hand
}

// Name returns the holder's display name.
func (h *holding) Name() string {
	return h.name
}

// Deal adds a card to the hand.
func (h *holding) Deal(card cards.Card) {
	h.cards = append(h.cards, card)
}

// Hand returns a copy of the cards held.
func (h *holding) Hand() cards.Hand {
	out := make(cards.Hand, len(h.cards))
	copy(out, h.cards)
	return out
}

// Value returns the evaluated hand total.
func (h *holding) Value() int {
	return h.cards.Value(h.rules.BustLimit)
}

// Busted reports whether the hand total exceeds the bust limit.
func (h *holding) Busted() bool {
	return h.cards.Busted(h.rules.BustLimit)
}

// Blackjack reports a two-card hand at exactly the bust limit.
func (h *holding) Blackjack() bool {
	return h.cards.Blackjack(h.rules.BustLimit)
}

func (h *holding) reset() {
	h.cards = h.cards[:0]
}
