// Package cards provides playing cards, the blackjack hand evaluator and a
// replenishing multi-pack shoe.
package cards

import (
	rand "math/rand/v2"
)

// PackSize is the number of cards in one standard pack.
const PackSize = 52

// Shoe is an endless source of shuffled cards drawn from a fixed number of
// packs. When the working set runs dry it is rebuilt from fresh packs and
// reshuffled, so cards from the previous cycle can turn up again.
type Shoe struct {
	packs int
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a shoe holding packs standard packs. The shoe is filled
// lazily on the first Pick.
func NewShoe(packs int, rng *rand.Rand) *Shoe {
	if packs < 1 {
		packs = 1
	}
	return &Shoe{
		packs: packs,
		cards: make([]Card, 0, packs*PackSize),
		rng:   rng,
	}
}

// Pick removes and returns the front card, refilling the shoe first if it is
// empty. It never fails.
func (s *Shoe) Pick() Card {
	if len(s.cards) == 0 {
		s.refill()
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left before the next refill.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Packs returns the number of packs per cycle.
func (s *Shoe) Packs() int {
	return s.packs
}

func (s *Shoe) refill() {
	s.cards = s.cards[:0]
	for range s.packs {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.shuffle()
}

// shuffle is Fisher-Yates over the injected source
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		var j int
		if s.rng != nil {
			j = s.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}
