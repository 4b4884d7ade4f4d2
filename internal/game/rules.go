package game

import (
	"errors"
	"fmt"
)

// Rules is the immutable table configuration shared by the table, its
// players and its dealer. Pass it by value.
type Rules struct {
	BustLimit    int    // hand totals above this are forfeit, typically 21
	SoftLimit    int    // dealer stops drawing at or above this, typically 17
	InitialCards int    // cards dealt to every hand at the start of a round
	Packs        int    // packs per shoe cycle, 0 means one per player
	Stake        int    // starting cash and the loan amount for broke players
	Peek         bool   // skip player decisions when the dealer holds blackjack
	DealerName   string // shown to players
	LoanShark    string // who lends the stake to broke players
}

// DefaultRules returns the standard table configuration.
func DefaultRules() Rules {
	return Rules{
		BustLimit:    21,
		SoftLimit:    17,
		InitialCards: 2,
		Packs:        0,
		Stake:        100,
		Peek:         false,
		DealerName:   "Lord Voldemort",
		LoanShark:    "Lucius Malfoy",
	}
}

// Validate checks that the rules describe a playable table.
func (r Rules) Validate() error {
	var errs []error
	if r.BustLimit < 2 {
		errs = append(errs, fmt.Errorf("bust limit must be at least 2, got %d", r.BustLimit))
	}
	if r.SoftLimit < 1 || r.SoftLimit > r.BustLimit {
		errs = append(errs, fmt.Errorf("soft limit must be between 1 and the bust limit (%d), got %d", r.BustLimit, r.SoftLimit))
	}
	if r.InitialCards < 1 {
		errs = append(errs, fmt.Errorf("initial cards must be positive, got %d", r.InitialCards))
	}
	if r.Packs < 0 {
		errs = append(errs, fmt.Errorf("packs cannot be negative, got %d", r.Packs))
	}
	if r.Stake <= 0 {
		errs = append(errs, fmt.Errorf("stake must be positive, got %d", r.Stake))
	}
	if r.DealerName == "" {
		errs = append(errs, errors.New("dealer name is required"))
	}
	return errors.Join(errs...)
}

// PacksFor returns the number of packs to load for a table of n players.
func (r Rules) PacksFor(n int) int {
	if r.Packs > 0 {
		return r.Packs
	}
	return max(n, 1)
}
