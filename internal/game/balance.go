package game

// Balance is a player's money. A hand and its split twin hold the same
// *Balance, so a wager or payout made through either is immediately visible
// to the other. Play is single-threaded; no locking is needed.
type Balance struct {
	amount int
}

// NewBalance creates a balance holding amount.
func NewBalance(amount int) *Balance {
	return &Balance{amount: amount}
}

// Amount returns the money currently available (not reserved by a bet).
func (b *Balance) Amount() int {
	return b.amount
}

func (b *Balance) credit(n int) {
	b.amount += n
}

func (b *Balance) debit(n int) {
	b.amount -= n
}
