package game

import "math"

// Payoff returns the win multiplier for p against d. An Ace up-card pays
// insurance at 2.0 and takes precedence over the 1.5 blackjack bonus,
// whatever the dealer's hole card turned out to be.
func Payoff(p *Player, d *Dealer) float64 {
	switch {
	case d.UpcardIsAce():
		return 2.0
	case p.Blackjack():
		return 1.5
	default:
		return 1.0
	}
}

// Judge decides the outcome of p's hand against d without touching money.
func Judge(p *Player, d *Dealer) Outcome {
	switch {
	case p.Busted(),
		!d.Busted() && p.Value() < d.Value(),
		d.Blackjack() && !p.Blackjack():
		return Lose
	case p.Blackjack() && d.Blackjack(),
		!p.Blackjack() && !d.Blackjack() && p.Value() == d.Value():
		return Push
	default:
		return Win
	}
}

// Settle judges p's hand against d and applies the result to p's bet and
// balance.
func Settle(p *Player, d *Dealer) HandResult {
	res := HandResult{
		Hand:      p.Hand(),
		Value:     p.Value(),
		Bet:       p.Bet(),
		Blackjack: p.Blackjack(),
		Busted:    p.Busted(),
		Outcome:   Judge(p, d),
	}

	switch res.Outcome {
	case Lose:
		res.Winnings = -p.Bet()
		p.Lose()
	case Push:
		p.Push()
	case Win:
		res.Payoff = Payoff(p, d)
		res.Winnings = int(math.Floor(float64(p.Bet()) * res.Payoff))
		p.Win(res.Payoff)
	}
	return res
}
