package game

import (
	"time"

	"github.com/lox/blackjack/internal/cards"
)

// Outcome is how a single hand finished against the dealer.
type Outcome int

const (
	Lose Outcome = iota
	Push
	Win
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// HandResult is the settlement of one hand.
type HandResult struct {
	Hand      cards.Hand
	Value     int
	Bet       int // the bet at settlement, including any double
	Blackjack bool
	Busted    bool
	Outcome   Outcome
	Payoff    float64 // multiplier applied on a win
	Winnings  int     // floor(bet*payoff) on a win, -bet on a loss, 0 on a push
}

// SeatResult sums the hands of one seat.
type SeatResult struct {
	Name      string
	Hands     []HandResult
	Net       int
	Insurance bool // the net win was paid at the insurance rate
	Balance   int  // balance after settlement
	Loaned    int  // total stake lent to the seat so far
}

// RoundResult records a finished round.
type RoundResult struct {
	ID              string
	Number          int
	StartedAt       time.Time
	Duration        time.Duration
	DealerHand      cards.Hand
	DealerValue     int
	DealerDrawn     int // cards the dealer drew after the initial deal
	DealerBust      bool
	DealerBlackjack bool
	DealerSkipped   bool // every hand was resolved before the dealer's turn
	Seats           []SeatResult
}

// Net returns the players' combined winnings for the round.
func (r *RoundResult) Net() int {
	total := 0
	for _, s := range r.Seats {
		total += s.Net
	}
	return total
}

// Hands returns the number of hands settled in the round.
func (r *RoundResult) Hands() int {
	n := 0
	for _, s := range r.Seats {
		n += len(s.Hands)
	}
	return n
}
