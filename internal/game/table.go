package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/randutil"
)

// CardSource supplies cards to the table. *cards.Shoe is the production
// source; tests stack the deck.
type CardSource interface {
	Pick() cards.Card
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the table's logger.
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithClock sets the clock used to time rounds.
func WithClock(clock quartz.Clock) Option {
	return func(t *Table) {
		t.clock = clock
	}
}

// WithCardSource replaces the shoe.
func WithCardSource(source CardSource) Option {
	return func(t *Table) {
		t.source = source
	}
}

// WithSeed seeds the shoe's shuffle. Zero means unseeded.
func WithSeed(seed int64) Option {
	return func(t *Table) {
		t.seed = seed
	}
}

// WithPlayerNames names the seats in order. Unnamed seats fall back to
// "Player N".
func WithPlayerNames(names ...string) Option {
	return func(t *Table) {
		t.names = names
	}
}

// Table runs rounds of blackjack between its seats and the dealer.
type Table struct {
	rules     Rules
	seats     []*Seat
	dealer    *Dealer
	source    CardSource
	presenter Presenter
	logger    *log.Logger
	clock     quartz.Clock
	seed      int64
	names     []string
	round     int
}

// NewTable seats numPlayers players with cash each.
func NewTable(rules Rules, numPlayers, cash int, presenter Presenter, opts ...Option) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if numPlayers < 1 {
		return nil, fmt.Errorf("need at least one player, got %d", numPlayers)
	}
	if cash < 0 {
		return nil, fmt.Errorf("starting cash cannot be negative, got %d", cash)
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}

	t := &Table{
		rules:     rules,
		dealer:    NewDealer(rules),
		presenter: presenter,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	if t.clock == nil {
		t.clock = quartz.NewReal()
	}
	if t.source == nil {
		t.source = cards.NewShoe(rules.PacksFor(numPlayers), randutil.New(t.seed))
	}

	t.seats = make([]*Seat, 0, numPlayers)
	for i := range numPlayers {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(t.names) && t.names[i] != "" {
			name = t.names[i]
		}
		t.seats = append(t.seats, NewSeat(NewPlayer(name, cash, rules)))
	}

	t.logger.Info("Table ready", "players", numPlayers, "cash", cash,
		"bust_limit", rules.BustLimit, "soft_limit", rules.SoftLimit)
	return t, nil
}

// Rules returns the table's rules.
func (t *Table) Rules() Rules {
	return t.rules
}

// Seats returns the seats in play order.
func (t *Table) Seats() []*Seat {
	return t.seats
}

// Dealer returns the house hand.
func (t *Table) Dealer() *Dealer {
	return t.dealer
}

// Round returns the number of rounds started.
func (t *Table) Round() int {
	return t.round
}

// Run plays rounds until the players decline another or quit.
func (t *Table) Run() error {
	for {
		if _, err := t.PlayRound(); err != nil {
			if errors.Is(err, ErrQuit) {
				t.logger.Info("Players quit mid-round", "round", t.round)
				return nil
			}
			return err
		}

		again, err := t.presenter.PromptNewGame()
		if errors.Is(err, ErrQuit) || (err == nil && !again) {
			t.logger.Info("Game over", "rounds", t.round)
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompting for new game: %w", err)
		}
	}
}

// PlayRound plays one full round: bets, the deal, every seat's turn, the
// dealer's turn and settlement. If the round fails part way every
// outstanding bet is refunded.
func (t *Table) PlayRound() (result *RoundResult, err error) {
	t.round++
	start := t.clock.Now()
	result = &RoundResult{
		ID:        uuid.NewString(),
		Number:    t.round,
		StartedAt: start,
	}
	logger := t.logger.With("round", t.round)
	logger.Info("Round started", "id", result.ID)

	t.clear()
	defer func() {
		if err != nil {
			logger.Error("Round aborted, refunding bets", "error", err)
			t.clear()
		}
	}()

	for _, seat := range t.seats {
		if err := t.collectBet(logger, seat); err != nil {
			return nil, err
		}
	}
	t.dealDealer()

	for _, seat := range t.seats {
		if err := t.playSeat(logger, seat); err != nil {
			return nil, err
		}
	}

	result.DealerSkipped = t.allResolved()
	result.DealerDrawn = t.playDealer(logger)
	result.DealerHand = t.dealer.Hand()
	result.DealerValue = t.dealer.Value()
	result.DealerBust = t.dealer.Busted()
	result.DealerBlackjack = t.dealer.Blackjack()

	for _, seat := range t.seats {
		result.Seats = append(result.Seats, t.settleSeat(logger, seat))
	}

	result.Duration = t.clock.Since(start)
	logger.Info("Round complete", "net", result.Net(), "dealer", result.DealerValue,
		"duration", result.Duration)
	if logger.GetLevel() <= log.DebugLevel {
		logger.Debug("Round state", "result", litter.Sdump(result))
	}
	return result, nil
}

func (t *Table) clear() {
	for _, seat := range t.seats {
		seat.clear()
	}
	t.dealer.ClearHand()
}

func (t *Table) collectBet(logger *log.Logger, seat *Seat) error {
	p := seat.Player()

	if p.TopUp(t.rules.Stake) {
		logger.Info("Loaned stake", "player", p.Name(), "amount", t.rules.Stake)
		t.presenter.ShowLoan(p.Name(), t.rules.LoanShark, t.rules.Stake)
	}

	for {
		amount, err := t.presenter.PromptBet(p.Name(), p.Balance())
		if err != nil {
			return fmt.Errorf("collecting bet from %s: %w", p.Name(), err)
		}
		if p.MakeBet(amount) {
			logger.Debug("Bet placed", "player", p.Name(), "amount", amount, "balance", p.Balance())
			break
		}
		logger.Warn("Bet rejected", "player", p.Name(), "amount", amount, "balance", p.Balance())
	}

	for range t.rules.InitialCards {
		p.Deal(t.source.Pick())
	}
	return nil
}

func (t *Table) dealDealer() {
	for range t.rules.InitialCards {
		t.dealer.Deal(t.source.Pick())
	}
	if up, ok := t.dealer.Upcard(); ok {
		t.presenter.ShowUpcard(up)
	}
}

// playSeat plays the seat's main hand, then the twin if the main hand split.
func (t *Table) playSeat(logger *log.Logger, seat *Seat) error {
	if err := t.playHand(logger, seat, seat.Player()); err != nil {
		return err
	}
	if twin := seat.Twin(); twin != nil {
		return t.playHand(logger, seat, twin)
	}
	return nil
}

// playHand runs one hand's turn. A split attaches the twin to seat straight
// away so an aborted round still refunds its bet.
func (t *Table) playHand(logger *log.Logger, seat *Seat, p *Player) error {
	limit := t.rules.BustLimit
	if !p.IsFirstHand() {
		t.presenter.ShowSplitHand(p.Name(), false)
	}

	// a natural or full hand from the deal never reaches the prompt
	announced := false
	if p.Value() >= limit {
		t.presenter.ShowHand(p.Name(), p.Hand(), p.Value())
		announced = t.announce(p)
	}

	for p.Value() < limit && !p.Standing() {
		t.presenter.ShowHand(p.Name(), p.Hand(), p.Value())

		if t.rules.Peek && t.dealer.Blackjack() {
			logger.Debug("Dealer holds blackjack, skipping decision", "player", p.Name())
			break
		}

		action, err := t.presenter.PromptAction(p.Name(), p.CanDouble(), p.CanSplit())
		if err != nil {
			return fmt.Errorf("prompting %s for action: %w", p.Name(), err)
		}
		logger.Debug("Action", "player", p.Name(), "action", action, "value", p.Value())

		switch action {
		case Hit:
			card := t.source.Pick()
			p.Deal(card)
			t.presenter.ShowCard(card)
		case Stand:
			p.Stand()
		case Double:
			if err := p.Double(); err != nil {
				return fmt.Errorf("%s doubling: %w", p.Name(), err)
			}
			card := t.source.Pick()
			p.Deal(card)
			t.presenter.ShowCard(card)
			p.Stand()
		case Split:
			twin, err := p.Split()
			if err != nil {
				return fmt.Errorf("%s splitting: %w", p.Name(), err)
			}
			seat.attach(twin)
			first, second := t.source.Pick(), t.source.Pick()
			p.Deal(first)
			twin.Deal(second)
			t.presenter.ShowSplit(first, second)
			t.presenter.ShowSplitHand(p.Name(), true)
			announced = false
			continue
		default:
			return fmt.Errorf("%s chose %v: %w", p.Name(), action, ErrUnknownAction)
		}

		announced = t.announce(p)
	}

	// a split card can carry the hand to the limit without another action
	if !announced && p.Value() >= limit {
		t.presenter.ShowHand(p.Name(), p.Hand(), p.Value())
		t.announce(p)
	}

	p.Stand()
	return nil
}

// announce reports where the hand stands after an action, and whether
// there was anything to report.
func (t *Table) announce(p *Player) bool {
	switch {
	case p.Blackjack():
		t.presenter.ShowBlackjack(p.Name())
	case p.Value() == t.rules.BustLimit:
		t.presenter.ShowLimit(p.Name())
	case p.Busted():
		t.presenter.ShowBust(p.Name(), p.Value())
	case p.Standing():
		t.presenter.ShowStand(p.Name(), p.Value())
	default:
		return false
	}
	return true
}

// playDealer draws the house hand and returns how many cards it drew.
func (t *Table) playDealer(logger *log.Logger) int {
	t.presenter.ShowDealerTurn(t.dealer.Name())

	drawn := 0
	if t.allResolved() {
		logger.Debug("Every hand is busted or blackjack, dealer stands pat")
	} else {
		for t.dealer.ShouldDraw() {
			t.dealer.Deal(t.source.Pick())
			drawn++
		}
	}

	t.presenter.ShowHand(t.dealer.Name(), t.dealer.Hand(), t.dealer.Value())
	if t.dealer.Blackjack() {
		t.presenter.ShowDealerBlackjack()
	}
	if t.dealer.Busted() {
		t.presenter.ShowDealerBust(t.dealer.Name())
	}
	logger.Debug("Dealer finished", "value", t.dealer.Value(), "drawn", drawn)
	return drawn
}

// allResolved reports whether no live hand can be affected by dealer draws.
func (t *Table) allResolved() bool {
	for _, seat := range t.seats {
		for _, h := range seat.Hands() {
			if !h.Busted() && !h.Blackjack() {
				return false
			}
		}
	}
	return true
}

func (t *Table) settleSeat(logger *log.Logger, seat *Seat) SeatResult {
	p := seat.Player()
	res := SeatResult{Name: p.Name()}

	for _, h := range seat.Hands() {
		hr := Settle(h, t.dealer)
		res.Hands = append(res.Hands, hr)
		res.Net += hr.Winnings
		logger.Info("Hand settled", "player", p.Name(), "first", h.IsFirstHand(),
			"value", hr.Value, "bet", hr.Bet, "outcome", hr.Outcome, "winnings", hr.Winnings)
	}
	seat.release()

	switch {
	case len(res.Hands) > 1:
		if res.Net > 0 && t.dealer.UpcardIsAce() {
			res.Insurance = true
			t.presenter.ShowInsurance()
		}
		t.presenter.ShowSplitResult(p.Name(), res.Net)
	case res.Net == 0:
		t.presenter.ShowPush(p.Name())
	case res.Net < 0:
		t.presenter.ShowLose(p.Name(), -res.Net)
	default:
		if t.dealer.UpcardIsAce() {
			res.Insurance = true
			t.presenter.ShowInsurance()
		}
		t.presenter.ShowWin(p.Name(), res.Net)
	}

	res.Balance = p.Balance()
	res.Loaned = p.Loaned()
	t.presenter.ShowBalance(p.Name(), res.Balance)
	return res
}
