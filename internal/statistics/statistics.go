package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// Statistics tracks blackjack results per hand and per round
type Statistics struct {
	Rounds  int
	Hands   int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Net per hand, kept for median/percentiles

	Wagered int // Total money bet, including doubles and split twins

	// Outcome counts
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int // Player naturals
	Busts      int // Player hands that went over
	Insured    int // Winning hands paid at the insurance rate
	Splits     int // Rounds in which a seat split

	// Dealer
	DealerBusts      int
	DealerBlackjacks int
	DealerSkips      int // Rounds where the dealer had nothing to play for
}

// Mean returns the mean net result per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumNet / float64(s.Hands)
}

// Variance returns the sample variance of per-hand results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of per-hand results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// PlayerEdge returns net winnings per unit wagered. Negative means the
// house is ahead.
func (s *Statistics) PlayerEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.SumNet / float64(s.Wagered)
}

// Add incorporates one settled hand
func (s *Statistics) Add(h game.HandResult) {
	net := float64(h.Winnings)
	s.Hands++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += h.Bet

	switch h.Outcome {
	case game.Win:
		s.Wins++
		if h.Payoff == 2.0 {
			s.Insured++
		}
	case game.Lose:
		s.Losses++
	case game.Push:
		s.Pushes++
	}
	if h.Blackjack {
		s.Blackjacks++
	}
	if h.Busted {
		s.Busts++
	}
}

// AddRound incorporates every hand of a finished round
func (s *Statistics) AddRound(r *game.RoundResult) {
	s.Rounds++
	for _, seat := range r.Seats {
		if len(seat.Hands) > 1 {
			s.Splits++
		}
		for _, h := range seat.Hands {
			s.Add(h)
		}
	}

	switch {
	case r.DealerBust:
		s.DealerBusts++
	case r.DealerBlackjack:
		s.DealerBlackjacks++
	}
	if r.DealerSkipped {
		s.DealerSkips++
	}
}

// Merge folds other into s. Used to combine per-table results.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wagered += other.Wagered
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.Insured += other.Insured
	s.Splits += other.Splits
	s.DealerBusts += other.DealerBusts
	s.DealerBlackjacks += other.DealerBlackjacks
	s.DealerSkips += other.DealerSkips
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Median returns the median per-hand result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Rate returns n as a fraction of hands played
func (s *Statistics) Rate(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if outcomes := s.Wins + s.Losses + s.Pushes; outcomes != s.Hands {
		return fmt.Errorf("outcomes (%d) do not match hands count (%d)", outcomes, s.Hands)
	}
	if s.Busts > s.Losses {
		return fmt.Errorf("busts (%d) exceed losses (%d)", s.Busts, s.Losses)
	}
	if s.Hands < s.Rounds {
		return fmt.Errorf("hands (%d) fewer than rounds (%d)", s.Hands, s.Rounds)
	}

	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: values sum to %.2f, net is %.2f", sum, s.SumNet)
	}
	return nil
}
