// apps/go-cli/internal/console/console.go
//
// Line-oriented console front end.
// Responsibilities:
//   - Prompt for guesses through a GuessSource (blocking).
//   - Re-prompt on user-correctable rejections (bad length, unknown word).
//   - Print the board after each accepted guess and the final verdict; a loss
//     reprints the full board before revealing the secret.
//
// Anything else (input errors, EOF, a session that is already over) ends Run
// with an error.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrNoMoreInput is returned when the guess source is exhausted mid-game.
var ErrNoMoreInput = errors.New("no more input")

// GuessSource blocks until the player supplies the next candidate guess.
type GuessSource interface {
	NextGuess() (string, error)
}

// LineSource reads one guess per line.
type LineSource struct {
	sc *bufio.Scanner
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{sc: bufio.NewScanner(r)}
}

func (l *LineSource) NextGuess() (string, error) {
	if l.sc.Scan() {
		return l.sc.Text(), nil
	}
	if err := l.sc.Err(); err != nil {
		return "", fmt.Errorf("read guess: %w", err)
	}
	return "", ErrNoMoreInput
}

// Run drives s to a terminal outcome, reading from src and writing to out.
func Run(s *game.Session, src GuessSource, out io.Writer, r Renderer) (game.Outcome, error) {
	if s.Outcome().Terminal() {
		return s.Outcome(), fmt.Errorf("console: %w", game.ErrSessionTerminal)
	}
	for !s.Outcome().Terminal() {
		fmt.Fprintf(out, "Enter your guess (%d-letter word): ", s.WordLength())
		line, err := src.NextGuess()
		if err != nil {
			return s.Outcome(), err
		}

		_, outcome, err := s.SubmitGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuessLength), errors.Is(err, game.ErrNotInVocabulary):
			log.Debug().Err(err).Str("game", s.ID()).Msg("guess rejected")
			fmt.Fprintln(out, "Invalid word. Please try again.")
			continue
		case err != nil:
			return outcome, err
		}
		r.Board(out, s.History())
	}

	switch s.Outcome() {
	case game.OutcomeWon:
		fmt.Fprintf(out, "Congratulations! You guessed the word in %d attempts.\n", s.Attempts())
	case game.OutcomeLost:
		secret, _ := s.SecretWord()
		// The full board is shown once more before the answer.
		r.Board(out, s.History())
		fmt.Fprintln(out, "Sorry, you did not guess the word.")
		fmt.Fprintf(out, "The secret word was: %s\n", secret)
	}
	log.Debug().Str("game", s.ID()).Stringer("outcome", s.Outcome()).Int("attempts", s.Attempts()).Msg("game over")
	return s.Outcome(), nil
}
