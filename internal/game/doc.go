// Package game implements the blackjack round engine.
//
// A Table seats players against a Dealer and plays rounds through a
// Presenter, which owns all input and output. Each round runs bet
// collection, the initial deal, every seat's turn (hit, stand, double,
// split), the dealer's turn and settlement, then reports the outcome.
//
// # Basic Usage
//
//	t, err := game.NewTable(game.DefaultRules(), 2, 100, presenter)
//	if err != nil {
//	    return err
//	}
//	return t.Run()
//
// # Deterministic Testing
//
// Seed the shoe, or replace it entirely with a stacked CardSource:
//
//	t, _ := game.NewTable(rules, 1, 100, presenter, game.WithSeed(42))
//	t, _ := game.NewTable(rules, 1, 100, presenter, game.WithCardSource(src))
//
// # Money
//
// A bet is reserved from the player's Balance when it is placed and returned
// (or not) at settlement. A split creates a twin Player sharing the same
// *Balance, held in the seat until settlement. ClearHand refunds any bet left
// outstanding, so money is only ever created by the loan a broke player
// receives at the start of a round.
package game
