// apps/go-cli/internal/words/choose.go
//
// Secret selection policies. A Chooser picks the secret from the answers list
// when a session starts; keeping it injectable keeps the engine deterministic.
//   - RandomChooser: uniform pick using crypto/rand.
//   - FixedChooser:  always the same word (tests, fixed-answer API mode).
// The date-seeded policy lives in the daily package.

package words

import (
	"crypto/rand"
	"math/big"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Chooser supplies the secret for a new session.
type Chooser interface {
	Choose(answers []string) (string, error)
}

// RandomChooser returns a cryptographically random answer.
type RandomChooser struct{}

func (RandomChooser) Choose(answers []string) (string, error) {
	if len(answers) == 0 {
		return "", ErrEmptyDictionary
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	if err != nil {
		return "", err
	}
	return answers[n.Int64()], nil
}

// FixedChooser ignores the list and returns its own word, normalized.
type FixedChooser string

func (f FixedChooser) Choose([]string) (string, error) {
	w := game.Normalize(string(f))
	if w == "" {
		return "", ErrEmptyDictionary
	}
	return w, nil
}
