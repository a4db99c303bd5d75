package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/tui"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func newModel(t *testing.T) (tui.Model, *game.Session) {
	t.Helper()
	d, err := words.NewDictionary([]string{"CRANE", "TRACE", "BUILT"}, nil, 5)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	s, err := game.NewSession("CRANE", 2, d)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return tui.New(s), s
}

func typeWord(m tea.Model, w string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(w)})
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingAndSubmitting(t *testing.T) {
	t.Parallel()
	m, s := newModel(t)
	var model tea.Model = m

	model = typeWord(model, "trac")
	model, _ = press(model, tea.KeyEnter)
	if s.Attempts() != 0 || !strings.Contains(model.View(), "Need 5 letters.") {
		t.Fatalf("short guess should be rejected:\n%s", model.View())
	}

	model = typeWord(model, "e1x")
	model, _ = press(model, tea.KeyEnter)
	if s.Attempts() != 1 {
		t.Fatalf("TRACE not submitted, attempts=%d", s.Attempts())
	}

	model = typeWord(model, "zzzzz")
	model, _ = press(model, tea.KeyEnter)
	if !strings.Contains(model.View(), "Not in word list.") || s.Attempts() != 1 {
		t.Fatalf("unknown word should be rejected:\n%s", model.View())
	}
	for i := 0; i < 5; i++ {
		model, _ = press(model, tea.KeyBackspace)
	}

	model = typeWord(model, "crane")
	model, cmd := press(model, tea.KeyEnter)
	if s.Outcome() != game.OutcomeWon || isQuit(cmd) {
		t.Fatalf("outcome=%v quit=%v", s.Outcome(), isQuit(cmd))
	}
	if !strings.Contains(model.View(), "Congratulations! You guessed the word in 2 attempts.") {
		t.Fatalf("win message missing:\n%s", model.View())
	}

	_, cmd = press(model, tea.KeyEnter)
	if !isQuit(cmd) {
		t.Fatalf("enter after game end should quit")
	}
}

func TestLossShowsSecret(t *testing.T) {
	t.Parallel()
	m, s := newModel(t)
	var model tea.Model = m
	for _, w := range []string{"built", "trace"} {
		model = typeWord(model, w)
		model, _ = press(model, tea.KeyEnter)
	}
	if s.Outcome() != game.OutcomeLost {
		t.Fatalf("outcome = %v", s.Outcome())
	}
	if !strings.Contains(model.View(), "The secret word was: CRANE") {
		t.Fatalf("secret not revealed:\n%s", model.View())
	}
	if err := model.(tui.Model).Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
}

func TestEscQuits(t *testing.T) {
	t.Parallel()
	m, _ := newModel(t)
	if _, cmd := press(m, tea.KeyEsc); !isQuit(cmd) {
		t.Fatalf("esc should quit")
	}
}
