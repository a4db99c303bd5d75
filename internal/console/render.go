// apps/go-cli/internal/console/render.go
//
// Board rendering for the console front end.
// Responsibilities:
//   - PlainRenderer: the "Current board:" listing with G / Y / _ patterns.
//   - StyledRenderer: lipgloss letter tiles, one row per guess.
//   - Row: a single styled row, also drawn by the TUI.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Renderer draws the board of accepted guesses.
type Renderer interface {
	Board(w io.Writer, history []game.Turn)
}

// PlainRenderer prints glyph rows: G exact, Y present, _ absent.
type PlainRenderer struct{}

func (PlainRenderer) Board(w io.Writer, history []game.Turn) {
	fmt.Fprintln(w, "Current board:")
	for i, t := range history {
		fmt.Fprintf(w, "Guess %d: %s   Result: %s\n", i+1, t.Guess, t.Feedback)
	}
	fmt.Fprintln(w)
}

var (
	tileBase = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#1e1e2e"))

	// tileStyles maps each mark to its tile colour.
	tileStyles = map[game.Mark]lipgloss.Style{
		game.MarkExact:   tileBase.Background(lipgloss.Color("#a6e3a1")),
		game.MarkPresent: tileBase.Background(lipgloss.Color("#f9e2af")),
		game.MarkAbsent:  tileBase.Background(lipgloss.Color("#585b70")).Foreground(lipgloss.Color("#cdd6f4")),
	}
)

// StyledRenderer prints coloured letter tiles, one row per guess.
type StyledRenderer struct{}

func (StyledRenderer) Board(w io.Writer, history []game.Turn) {
	for _, t := range history {
		fmt.Fprintln(w, Row(t))
	}
	fmt.Fprintln(w)
}

// Row renders one turn as coloured tiles.
func Row(t game.Turn) string {
	tiles := make([]string, len(t.Guess))
	for i := range t.Guess {
		tiles[i] = tileStyles[t.Feedback[i]].Render(string(t.Guess[i]))
	}
	return strings.Join(tiles, " ")
}
