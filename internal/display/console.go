// Package display provides the console front-end for the blackjack table.
package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

var _ game.Presenter = (*Console)(nil)

var (
	errNotInteger  = errors.New("answer is not an integer")
	errOverBalance = errors.New("bet exceeds balance")
	errBadOption   = errors.New("action not offered")
	errNotPositive = errors.New("answer is not greater than zero")
)

// hints are shown in place of a rejected answer's error.
var hints = map[error]string{
	errNotInteger:  "I know you're drunk but bets can only be integers.",
	errOverBalance: "You can't bet more than you have!",
	errBadOption:   "Bummer! Choose from the options below",
	errNotPositive: "Please enter a whole number greater than zero.",
}

func hint(err error) string {
	if h, ok := hints[err]; ok {
		return h
	}
	return err.Error()
}

// Option configures a Console.
type Option func(*Console)

// WithInput reads answers from r.
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = r
	}
}

// WithOutput writes to w.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithInteractive forces interactive (Bubble Tea) prompts on or off instead
// of detecting a terminal.
func WithInteractive(on bool) Option {
	return func(c *Console) {
		c.interactive = &on
	}
}

// Console is a game.Presenter that talks to a terminal. On a TTY prompts
// run as small Bubble Tea programs; otherwise it reads plain lines, which
// keeps it scriptable.
type Console struct {
	in          io.Reader
	out         io.Writer
	interactive *bool
	styles      *Styles
	lines       *bufio.Scanner
}

// NewConsole creates a console on stdin/stdout unless overridden.
func NewConsole(opts ...Option) *Console {
	c := &Console{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	if c.interactive == nil {
		on := isTerminal(c.in) && isTerminal(c.out)
		c.interactive = &on
	}

	renderer := lipgloss.NewRenderer(c.out)
	if !*c.interactive {
		renderer.SetColorProfile(termenv.Ascii)
	}
	c.styles = NewStyles(renderer)
	c.lines = bufio.NewScanner(c.in)
	return c
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ask prompts until validate accepts the answer. It returns game.ErrQuit on
// end of input or an explicit quit.
func (c *Console) ask(label, placeholder string, validate func(string) error) (string, error) {
	if *c.interactive {
		return c.askTUI(label, placeholder, validate)
	}

	for {
		fmt.Fprintln(c.out, c.styles.Prompt.Render(label))
		if !c.lines.Scan() {
			if err := c.lines.Err(); err != nil {
				return "", fmt.Errorf("reading input: %w", err)
			}
			return "", game.ErrQuit
		}

		v := strings.TrimSpace(c.lines.Text())
		if isQuit(v) {
			return "", game.ErrQuit
		}
		if err := validate(v); err != nil {
			fmt.Fprintln(c.out, c.styles.Error.Render(hint(err)))
			continue
		}
		fmt.Fprintln(c.out)
		return v, nil
	}
}

func (c *Console) askTUI(label, placeholder string, validate func(string) error) (string, error) {
	model := newPromptModel(label, placeholder, validate, c.styles)
	final, err := tea.NewProgram(model, tea.WithInput(c.in), tea.WithOutput(c.out)).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	pm, ok := final.(promptModel)
	if !ok || pm.quit {
		return "", game.ErrQuit
	}
	fmt.Fprintf(c.out, "%s %s\n\n", c.styles.Prompt.Render(label), pm.value)
	return pm.value, nil
}

func positiveInt(limit int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errNotInteger
		}
		if n <= 0 {
			return errNotPositive
		}
		if limit > 0 && n > limit {
			return errOverBalance
		}
		return nil
	}
}

// Welcome prints the banner
func (c *Console) Welcome(dealerName string) {
	fmt.Fprintln(c.out, c.styles.Title.Render(" ♠ ♥ Welcome to Hog's Head, Muggles! ♦ ♣ "))
	fmt.Fprintf(c.out, "Your dealer today is %s\n", c.styles.Dealer.Render(dealerName))
	fmt.Fprint(c.out, "Good luck and happy gambling!\n\n")
}

// PromptNumPlayers asks how many seats to fill
func (c *Console) PromptNumPlayers() (int, error) {
	v, err := c.ask("Please enter number of players:", "1", positiveInt(0))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// PromptCash asks for every player's starting cash
func (c *Console) PromptCash() (int, error) {
	v, err := c.ask("Please enter initial cash:", "100", positiveInt(0))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// PromptBet asks for a bet between 1 and maxBet
func (c *Console) PromptBet(playerName string, maxBet int) (int, error) {
	label := fmt.Sprintf("Enter an integral bet for %s no more than $%d", playerName, maxBet)
	v, err := c.ask(label, strconv.Itoa(min(10, maxBet)), func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errNotInteger
		}
		if n <= 0 || n > maxBet {
			return errOverBalance
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// PromptAction asks for hit, stand and, when allowed, double or split
func (c *Console) PromptAction(playerName string, canDouble, canSplit bool) (game.Action, error) {
	legal := game.LegalActions(canDouble, canSplit)
	options := make([]string, len(legal))
	for i, a := range legal {
		options[i] = fmt.Sprintf("%s - %s", a.Key(), a)
	}
	label := fmt.Sprintf("%s: %s", playerName, strings.Join(options, ", "))

	v, err := c.ask(label, "h", func(s string) error {
		a, err := game.ParseAction(s)
		if err != nil || !a.Allowed(canDouble, canSplit) {
			return errBadOption
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return game.ParseAction(v)
}

// PromptNewGame asks whether to deal another round; only "n" declines
func (c *Console) PromptNewGame() (bool, error) {
	fmt.Fprintln(c.out)
	v, err := c.ask("Game for another bet? (anything for yes, n for no)", "", func(string) error { return nil })
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(v, "n") && !strings.EqualFold(v, "no"), nil
}

// ShowHand prints a hand and its value
func (c *Console) ShowHand(name string, hand cards.Hand, value int) {
	fmt.Fprintf(c.out, "%s, your cards are: %s\n", c.styles.Player.Render(name), c.styles.Hand(hand))
	fmt.Fprintf(c.out, "current hand value: %d\n\n", value)
}

// ShowCard prints a dealt card
func (c *Console) ShowCard(card cards.Card) {
	fmt.Fprintf(c.out, "You were dealt: %s\n", c.styles.Card(card))
}

// ShowUpcard prints the dealer's visible card
func (c *Console) ShowUpcard(card cards.Card) {
	fmt.Fprintf(c.out, "The dealer's upcard is: %s valued at %d\n\n", c.styles.Card(card), card.Value())
}

// ShowSplit prints the cards dealt to both halves of a split
func (c *Console) ShowSplit(first, second cards.Card) {
	fmt.Fprintf(c.out, "Hand split! First hand was dealt %s, second hand was dealt %s\n\n",
		c.styles.Card(first), c.styles.Card(second))
}

// ShowSplitHand says which half of a split is in play
func (c *Console) ShowSplitHand(name string, first bool) {
	which := "second"
	if first {
		which = "first"
	}
	fmt.Fprint(c.out, c.styles.Info.Render(fmt.Sprintf("%s, playing your %s hand.", name, which)), "\n\n")
}

// ShowSplitResult prints the combined result of both split hands
func (c *Console) ShowSplitResult(name string, net int) {
	switch {
	case net > 0:
		fmt.Fprintf(c.out, "%s, your split hands won you %s in total!\n", name, c.styles.Money.Render(fmt.Sprintf("$%d", net)))
	case net < 0:
		fmt.Fprintf(c.out, "%s, your split hands lost you %s in total.\n", name, c.styles.Error.Render(fmt.Sprintf("$%d", -net)))
	default:
		fmt.Fprintf(c.out, "%s, your split hands broke even.\n", name)
	}
}

// ShowBlackjack announces a natural
func (c *Console) ShowBlackjack(name string) {
	fmt.Fprint(c.out, c.styles.Success.Render("BLACKJACK! Your payoff increases to 3:2."), "\n\n")
}

// ShowLimit announces a hand at exactly the bust limit
func (c *Console) ShowLimit(name string) {
	fmt.Fprint(c.out, c.styles.Success.Render(fmt.Sprintf("Congratulations %s! You're unbeatable now!", name)), "\n\n")
}

// ShowBust announces a busted hand
func (c *Console) ShowBust(name string, value int) {
	fmt.Fprint(c.out, c.styles.Error.Render(fmt.Sprintf("Tough luck, %s. You got busted with a score: %d", name, value)), "\n\n")
}

// ShowStand announces a standing hand
func (c *Console) ShowStand(name string, value int) {
	fmt.Fprintf(c.out, "%s, you are now standing at: %d\n\n", name, value)
}

// ShowInsurance explains the 2:1 payout on an Ace up-card
func (c *Console) ShowInsurance() {
	fmt.Fprintln(c.out, c.styles.Warning.Render("The face card of dealer was an Ace! You get insurance on your payoff at 2:1."))
}

// ShowDealerTurn announces the dealer's turn
func (c *Console) ShowDealerTurn(dealerName string) {
	fmt.Fprintf(c.out, "It's %s's turn.\n\n", c.styles.Dealer.Render(dealerName))
}

// ShowDealerBust announces a busted dealer
func (c *Console) ShowDealerBust(dealerName string) {
	fmt.Fprint(c.out, c.styles.Success.Render(fmt.Sprintf("THE DEALER GOT BUSTED! Let's check if %s owes you.", dealerName)), "\n\n")
}

// ShowDealerBlackjack announces a dealer natural
func (c *Console) ShowDealerBlackjack() {
	fmt.Fprint(c.out, c.styles.Error.Render("The dealer has BLACKJACK!"), "\n\n")
}

// ShowWin prints a seat's net winnings
func (c *Console) ShowWin(name string, amount int) {
	fmt.Fprintf(c.out, "Congratulations %s! You won %s!\n", name, c.styles.Money.Render(fmt.Sprintf("$%d", amount)))
}

// ShowLose prints a seat's net loss
func (c *Console) ShowLose(name string, amount int) {
	fmt.Fprintf(c.out, "%s, you lost %s\n", name, c.styles.Error.Render(fmt.Sprintf("$%d", amount)))
}

// ShowPush prints a tie
func (c *Console) ShowPush(name string) {
	fmt.Fprintf(c.out, "%s, your game ended in a push.\n", name)
}

// ShowBalance prints a seat's remaining money
func (c *Console) ShowBalance(name string, balance int) {
	fmt.Fprintf(c.out, "You now have %s remaining\n\n", c.styles.Money.Render(fmt.Sprintf("$%d", balance)))
}

// ShowLoan tells a broke player they have been lent the stake
func (c *Console) ShowLoan(name, lender string, amount int) {
	fmt.Fprintf(c.out, "%s, it seems like you're out of cash.\n", name)
	fmt.Fprintf(c.out, "Our loan shark, %s will be happy to lend you %s.\n", lender, c.styles.Money.Render(fmt.Sprintf("$%d", amount)))
	fmt.Fprint(c.out, "Use them well!\n\n")
}

// Goodbye prints the exit line
func (c *Console) Goodbye() {
	fmt.Fprint(c.out, "\n", c.styles.Info.Render("Exiting game. Avada Kedavra!"), "\n\n")
}
