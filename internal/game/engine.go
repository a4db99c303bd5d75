// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions from an injected secret, attempt budget and vocabulary.
//   - Validate and apply guesses (length, alphabetic, vocabulary).
//   - Score guesses with the feedback engine under the session's policy.
//   - Track state transitions: playing → won/lost, and keep an append-only history.
//
// Notes:
//   - Secret selection lives outside this package (words.Chooser, daily.Chooser),
//     so a session is fully deterministic given its secret.
//   - A Session is not safe for concurrent use; callers serialize SubmitGuess.
//
// Package-level defaults are kept here for clarity.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMaxAttempts = 6
	DefaultWordLength  = 5
)

// Session holds the state of one game from secret selection to outcome.
type Session struct {
	id          string
	secret      string // uppercase, never mutated
	maxAttempts int
	policy      DuplicatePolicy
	vocab       Vocabulary
	history     []Turn
	outcome     Outcome
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithPolicy selects the duplicate-letter policy (default DefaultPolicy).
func WithPolicy(p DuplicatePolicy) Option {
	return func(s *Session) { s.policy = p }
}

// WithID overrides the random session identifier.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession constructs a session in the playing state.
// The secret is trimmed and uppercased and must consist of letters A–Z only.
func NewSession(secret string, maxAttempts int, vocab Vocabulary, opts ...Option) (*Session, error) {
	secret = Normalize(secret)
	if secret == "" || !IsAlpha(secret) {
		return nil, fmt.Errorf("game: secret %q must be non-empty letters A-Z", secret)
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("game: max attempts must be positive, got %d", maxAttempts)
	}
	if vocab == nil {
		return nil, errors.New("game: vocabulary is required")
	}
	s := &Session{
		id:          randomID(),
		secret:      secret,
		maxAttempts: maxAttempts,
		policy:      DefaultPolicy,
		vocab:       vocab,
		history:     make([]Turn, 0, maxAttempts),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// SubmitGuess validates and scores a guess, mutating the session state.
// Returns: the per-letter feedback, the new outcome, or an error.
//
// Validation rules, in order:
//   - Session must not be finished (ErrSessionTerminal).
//   - Guess must have the secret's length (ErrInvalidGuessLength).
//   - Guess must be letters A–Z accepted by the vocabulary (ErrNotInVocabulary).
//
// A rejected guess leaves history and outcome unchanged.
//
// State transitions:
//   - If all marks are exact → won.
//   - Else if the attempt count reaches maxAttempts → lost.
func (s *Session) SubmitGuess(guess string) (Feedback, Outcome, error) {
	if s.outcome.Terminal() {
		return nil, s.outcome, fmt.Errorf("submit after %s: %w", s.outcome, ErrSessionTerminal)
	}
	guess = Normalize(guess)
	if len(guess) != len(s.secret) {
		return nil, s.outcome, fmt.Errorf("%q has %d letters, want %d: %w", guess, len(guess), len(s.secret), ErrInvalidGuessLength)
	}
	if !IsAlpha(guess) || !s.vocab.Contains(guess) {
		return nil, s.outcome, fmt.Errorf("%q: %w", guess, ErrNotInVocabulary)
	}

	fb := ClassifyWith(s.policy, s.secret, guess)
	s.history = append(s.history, Turn{Guess: guess, Feedback: fb})

	if fb.AllExact() {
		s.outcome = OutcomeWon
	} else if len(s.history) >= s.maxAttempts {
		s.outcome = OutcomeLost
	}
	return append(Feedback(nil), fb...), s.outcome, nil
}

// History returns a copy of the accepted turns, oldest first.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	for i, t := range s.history {
		out[i] = Turn{Guess: t.Guess, Feedback: append(Feedback(nil), t.Feedback...)}
	}
	return out
}

// Outcome reports the current state.
func (s *Session) Outcome() Outcome { return s.outcome }

// SecretWord reveals the secret once the game is won or lost.
func (s *Session) SecretWord() (string, error) {
	if !s.outcome.Terminal() {
		return "", ErrSecretHidden
	}
	return s.secret, nil
}

func (s *Session) ID() string { return s.id }
func (s *Session) Attempts() int { return len(s.history) }
func (s *Session) MaxAttempts() int { return s.maxAttempts }
func (s *Session) Remaining() int { return s.maxAttempts - len(s.history) }
func (s *Session) WordLength() int { return len(s.secret) }
func (s *Session) Policy() DuplicatePolicy { return s.policy }

// Normalize trims surrounding whitespace and uppercases ASCII letters.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsAlpha checks that a string consists only of uppercase A–Z.
func IsAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
