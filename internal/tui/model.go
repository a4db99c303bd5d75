// apps/go-cli/internal/tui/model.go
//
// Full-screen bubbletea front end over a game.Session (`wordle tui`).
// Keys:
//   - Letters type into the current row, backspace deletes.
//   - Enter submits; on a finished game it quits.
//   - Esc / ctrl+c quit.

package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#74c7ec")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	hotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")).Bold(true)
	pendingTile = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#cdd6f4")).
		Background(lipgloss.Color("#313244"))
)

// Model is the tea.Model for one game.
type Model struct {
	session *game.Session
	input   []byte
	status  string
	err     error
}

// New wraps s; the model drives it until a terminal outcome.
func New(s *game.Session) Model {
	return Model{session: s}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.session.Outcome().Terminal() {
			return m, tea.Quit
		}
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		if m.session.Outcome().Terminal() {
			return m, nil
		}
		for _, r := range key.Runes {
			c := strings.ToUpper(string(r))
			if len(c) == 1 && game.IsAlpha(c) && len(m.input) < m.session.WordLength() {
				m.input = append(m.input, c[0])
			}
		}
		m.status = ""
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	_, outcome, err := m.session.SubmitGuess(string(m.input))
	switch {
	case errors.Is(err, game.ErrInvalidGuessLength):
		m.status = fmt.Sprintf("Need %d letters.", m.session.WordLength())
		return m, nil
	case errors.Is(err, game.ErrNotInVocabulary):
		m.status = "Not in word list."
		return m, nil
	case err != nil:
		m.err = err
		return m, tea.Quit
	}
	m.input = m.input[:0]
	switch outcome {
	case game.OutcomeWon:
		m.status = fmt.Sprintf("Congratulations! You guessed the word in %d attempts.", m.session.Attempts())
	case game.OutcomeLost:
		secret, _ := m.session.SecretWord()
		m.status = "The secret word was: " + secret
	}
	return m, nil
}

// Err is the fatal error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WORDLE"))
	b.WriteString("\n\n")

	for _, t := range m.session.History() {
		b.WriteString(console.Row(t))
		b.WriteString("\n")
	}
	rows := m.session.Remaining()
	if !m.session.Outcome().Terminal() && rows > 0 {
		b.WriteString(m.pendingRow(string(m.input)))
		b.WriteString("\n")
		rows--
	}
	if !m.session.Outcome().Terminal() {
		for ; rows > 0; rows-- {
			b.WriteString(m.pendingRow(""))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(hotStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.session.Outcome().Terminal() {
		b.WriteString(mutedStyle.Render("enter/esc: quit"))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("attempt %d/%d · enter: submit · esc: quit",
			m.session.Attempts()+1, m.session.MaxAttempts())))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) pendingRow(typed string) string {
	tiles := make([]string, m.session.WordLength())
	for i := range tiles {
		c := " "
		if i < len(typed) {
			c = typed[i : i+1]
		}
		tiles[i] = pendingTile.Render(c)
	}
	return strings.Join(tiles, " ")
}

// Run starts the full-screen program and blocks until it exits.
func Run(s *game.Session, opts ...tea.ProgramOption) (game.Outcome, error) {
	final, err := tea.NewProgram(New(s), opts...).Run()
	if err != nil {
		return s.Outcome(), err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return s.Outcome(), fm.err
	}
	return s.Outcome(), nil
}
