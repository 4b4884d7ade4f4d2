// Package bot provides fixed-policy drivers for headless tables. They
// exercise the table; they do not try to beat it.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

// Situation is what a strategy can see when asked to act.
type Situation struct {
	Hand      cards.Hand
	Value     int
	CanDouble bool
	CanSplit  bool
	Rules     game.Rules
}

// Strategy picks an action for a hand. It must only return actions allowed
// by the situation's flags.
type Strategy interface {
	Name() string
	Decide(s Situation) game.Action
}

// Strategies lists the names accepted by NewStrategy.
var Strategies = []string{"dealer", "stand", "rand"}

// NewStrategy builds a strategy by name. rng is only used by "rand".
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "dealer":
		return DealerBot{}, nil
	case "stand":
		return StandBot{}, nil
	case "rand":
		return NewRandBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, Strategies)
	}
}

// StandBot stands on whatever it was dealt.
type StandBot struct{}

func (StandBot) Name() string { return "stand" }

func (StandBot) Decide(Situation) game.Action { return game.Stand }

// DealerBot plays the house rule: draw below the soft limit, never double
// or split.
type DealerBot struct{}

func (DealerBot) Name() string { return "dealer" }

func (DealerBot) Decide(s Situation) game.Action {
	if s.Value < s.Rules.SoftLimit {
		return game.Hit
	}
	return game.Stand
}

// RandBot picks uniformly among the legal actions.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a RandBot drawing from rng.
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) Name() string { return "rand" }

func (r *RandBot) Decide(s Situation) game.Action {
	legal := game.LegalActions(s.CanDouble, s.CanSplit)
	if r.rng == nil {
		return legal[rand.IntN(len(legal))]
	}
	return legal[r.rng.IntN(len(legal))]
}
