package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/cards"
)

// Styles contains all styling for the console
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Money     lipgloss.Style
	Player    lipgloss.Style
	Dealer    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
}

// NewStyles builds the palette on renderer, so colour is dropped when the
// renderer's output is not a terminal.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Money:     r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Player:    r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Dealer:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		RedCard:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
	}
}

// Card renders a single card in its suit colour.
func (s *Styles) Card(c cards.Card) string {
	if c.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Hand renders cards as "[A♠ 10♥]".
func (s *Styles) Hand(h cards.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = s.Card(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
