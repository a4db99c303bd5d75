// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark / Feedback: per-letter result of a guess (exact/present/absent).
//   - Outcome: session state (playing/won/lost).
//   - Turn: one accepted guess and its feedback.
//   - Vocabulary: the word-list collaborator consulted before scoring.
//   - Sentinel errors returned by Session.SubmitGuess.

package game

import (
	"errors"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter does not exist in the secret at all.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Symbol returns the single-glyph board form: G, Y or _.
func (m Mark) Symbol() byte {
	switch m {
	case MarkExact:
		return 'G'
	case MarkPresent:
		return 'Y'
	default:
		return '_'
	}
}

// Feedback is the row of marks produced for one guess, one per letter.
type Feedback []Mark

// AllExact reports whether every position is MarkExact.
// An empty row is never a win.
func (f Feedback) AllExact() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// String renders the row as glyphs, e.g. "_GYGY".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		b.WriteByte(m.Symbol())
	}
	return b.String()
}

// Outcome is the coarse state of a session.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String reports the wire/state name: "playing", "won" or "lost".
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == OutcomeWon || o == OutcomeLost }

// Turn is one accepted guess together with its feedback.
type Turn struct {
	Guess    string   // uppercase
	Feedback Feedback // same length as Guess
}

// Vocabulary decides which guesses are accepted as words.
// Implementations receive uppercase A–Z words of the session's length.
type Vocabulary interface {
	Contains(word string) bool
}

var (
	// ErrInvalidGuessLength: guess length differs from the secret's. User-correctable.
	ErrInvalidGuessLength = errors.New("invalid guess length")
	// ErrNotInVocabulary: guess is not an accepted word. User-correctable.
	ErrNotInVocabulary = errors.New("not in word list")
	// ErrSessionTerminal: a guess was submitted after the game ended. Caller bug.
	ErrSessionTerminal = errors.New("game finished")
	// ErrSecretHidden: the secret was requested while the game is still in progress.
	ErrSecretHidden = errors.New("secret hidden until game ends")
)
