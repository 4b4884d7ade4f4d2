package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		hand      string
		value     int
		busted    bool
		blackjack bool
	}{
		{name: "pair of aces softens one", hand: "As Ah", value: 12},
		{name: "ace king is blackjack", hand: "As Kd", value: 21, blackjack: true},
		{name: "no aces to soften", hand: "10s 7h 6d", value: 23, busted: true},
		{name: "three card twenty one is not blackjack", hand: "10s 10h Ad", value: 21},
		{name: "soft seventeen", hand: "As 6h", value: 17},
		{name: "soft hand hardens", hand: "As 6h 9c", value: 16},
		{name: "four aces", hand: "As Ah Ad Ac", value: 14},
		{name: "aces cannot save it", hand: "Ks Qh As Ad", value: 22, busted: true},
		{name: "empty hand", hand: "", value: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hand(MustParseCards(tt.hand))
			assert.Equal(t, tt.value, Evaluate(h, 21))
			assert.Equal(t, tt.value, h.Value(21))
			assert.Equal(t, tt.busted, h.Busted(21))
			assert.Equal(t, tt.blackjack, h.Blackjack(21))
		})
	}
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	a := Hand(MustParseCards("As 9h Ad 5c"))
	b := Hand(MustParseCards("5c Ad 9h As"))
	assert.Equal(t, Evaluate(a, 21), Evaluate(b, 21))
}

func TestEvaluateCustomLimit(t *testing.T) {
	h := Hand(MustParseCards("As 10h 10d"))
	assert.Equal(t, 21, Evaluate(h, 21))
	assert.Equal(t, 21, Evaluate(h, 25))
	assert.Equal(t, 31, Evaluate(Hand(MustParseCards("As Kh Kd")), 31))
}

func TestHandString(t *testing.T) {
	assert.Equal(t, "A♠ 10♥", Hand(MustParseCards("As 10h")).String())
}
