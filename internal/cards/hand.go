package cards

import "strings"

// Hand is an ordered run of cards. Order only matters for display.
type Hand []Card

// Evaluate returns the best total for hand that does not exceed bustLimit,
// counting each Ace as 11 and softening Aces to 1, one at a time, while the
// total is over the limit. If no softening keeps the hand under the limit the
// fully softened (busted) total is returned.
func Evaluate(hand Hand, bustLimit int) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for total > bustLimit && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// Value is Evaluate on the receiver.
func (h Hand) Value(bustLimit int) int {
	return Evaluate(h, bustLimit)
}

// Busted reports whether the hand is over the limit.
func (h Hand) Busted(bustLimit int) bool {
	return Evaluate(h, bustLimit) > bustLimit
}

// Blackjack reports whether the hand is a natural: exactly two cards
// totalling the limit. Three or more cards reaching the limit are a full
// hand, not a blackjack.
func (h Hand) Blackjack(bustLimit int) bool {
	return len(h) == 2 && Evaluate(h, bustLimit) == bustLimit
}

// String renders the hand as space separated cards, e.g. "A♠ 10♥".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
