package cards

import (
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoeCycleContainsEveryCard(t *testing.T) {
	const packs = 3
	shoe := NewShoe(packs, randutil.New(42))

	counts := map[Card]int{}
	for range packs * PackSize {
		counts[shoe.Pick()]++
	}

	require.Len(t, counts, PackSize)
	for card, n := range counts {
		assert.Equal(t, packs, n, "card %s", card)
	}
	assert.Equal(t, 0, shoe.Remaining())
}

func TestShoeRefillsWhenEmpty(t *testing.T) {
	shoe := NewShoe(1, randutil.New(7))
	for range PackSize {
		shoe.Pick()
	}
	require.Equal(t, 0, shoe.Remaining())

	shoe.Pick()
	assert.Equal(t, PackSize-1, shoe.Remaining())
}

func TestShoeIsDeterministicForSeed(t *testing.T) {
	a := NewShoe(2, randutil.New(99))
	b := NewShoe(2, randutil.New(99))
	for range 200 {
		require.Equal(t, a.Pick(), b.Pick())
	}
}

func TestShoeClampsPacks(t *testing.T) {
	assert.Equal(t, 1, NewShoe(0, nil).Packs())
	// nil rng falls back to the global source
	assert.NotPanics(t, func() { NewShoe(-3, nil).Pick() })
}
