package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a one-line Bubble Tea program that keeps asking until
// validate accepts the input or the player bails out.
type promptModel struct {
	label    string
	input    textinput.Model
	validate func(string) error
	styles   *Styles

	errMsg string
	value  string
	done   bool
	quit   bool
}

func newPromptModel(label, placeholder string, validate func(string) error, styles *Styles) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt

	return promptModel{
		label:    label,
		input:    ti,
		validate: validate,
		styles:   styles,
	}
}

// Init initializes the prompt
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			if isQuit(v) {
				m.quit = true
				return m, tea.Quit
			}
			if err := m.validate(v); err != nil {
				m.errMsg = hint(err)
				m.input.SetValue("")
				return m, nil
			}
			m.value = v
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m promptModel) View() string {
	if m.done || m.quit {
		return ""
	}
	var b strings.Builder
	fmt.Fprintln(&b, m.styles.Prompt.Render(m.label))
	if m.errMsg != "" {
		fmt.Fprintln(&b, m.styles.Error.Render(m.errMsg))
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Info.Render("(q to quit)"))
	b.WriteString("\n")
	return b.String()
}

func isQuit(v string) bool {
	switch strings.ToLower(v) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
