package game

// Seat is one place at the table. It is either Single, holding one player,
// or Split, holding the player and the twin hand created when they split.
// Both hands of a split seat share one balance.
type Seat struct {
	player *Player
	twin   *Player
}

// NewSeat seats player.
func NewSeat(player *Player) *Seat {
	return &Seat{player: player}
}

// Player returns the seat's main hand.
func (s *Seat) Player() *Player {
	return s.player
}

// Twin returns the split twin, or nil for a single seat.
func (s *Seat) Twin() *Player {
	return s.twin
}

// IsSplit reports whether the seat currently holds two hands.
func (s *Seat) IsSplit() bool {
	return s.twin != nil
}

// Hands returns the live hands in play order: the main hand, then the twin.
func (s *Seat) Hands() []*Player {
	if s.twin == nil {
		return []*Player{s.player}
	}
	return []*Player{s.player, s.twin}
}

// Total returns the seat's money: the shared balance plus every live bet.
func (s *Seat) Total() int {
	total := s.player.Balance()
	for _, h := range s.Hands() {
		total += h.Bet()
	}
	return total
}

func (s *Seat) attach(twin *Player) {
	s.twin = twin
}

// release clears the twin and drops it, returning the seat to Single.
func (s *Seat) release() {
	if s.twin != nil {
		s.twin.ClearHand()
		s.twin = nil
	}
}

// clear readies the seat for a new round.
func (s *Seat) clear() {
	s.release()
	s.player.ClearHand()
}
