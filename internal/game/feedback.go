// apps/go-cli/internal/game/feedback.go
//
// Feedback engine: classifies every letter of a guess against the secret.
//
// Both policies run two passes:
//   Pass 1: mark exact matches.
//   Pass 2: resolve the remaining positions to present/absent.
//
// They differ only in how pass 2 treats repeated letters (see DuplicatePolicy).

package game

import (
	"fmt"
	"strings"
)

// DuplicatePolicy selects how repeated guess letters are resolved in pass 2.
type DuplicatePolicy int

const (
	// PolicyContainment marks a non-exact letter present whenever it occurs
	// anywhere in the secret. A secret with one E and a guess with two
	// misplaced Es yields two presents.
	PolicyContainment DuplicatePolicy = iota

	// PolicyLetterBudget is canonical Wordle: each non-exact secret letter can
	// satisfy at most one present, so surplus repeats are absent.
	PolicyLetterBudget
)

// DefaultPolicy is the policy used by Classify and by sessions without WithPolicy.
const DefaultPolicy = PolicyContainment

// String returns the config name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case PolicyLetterBudget:
		return "budget"
	default:
		return "containment"
	}
}

// ParsePolicy maps a config name ("containment", "budget") to a policy.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "containment":
		return PolicyContainment, nil
	case "budget", "canonical":
		return PolicyLetterBudget, nil
	}
	return 0, fmt.Errorf("unknown duplicate policy %q", s)
}

// Classify scores guess against secret under DefaultPolicy.
func Classify(secret, guess string) Feedback {
	return ClassifyWith(DefaultPolicy, secret, guess)
}

// ClassifyWith scores guess against secret under the given policy.
//
// Both words must be non-empty, of equal length and normalized to the same
// case; the session guarantees this. Violations panic rather than pad or truncate.
func ClassifyWith(policy DuplicatePolicy, secret, guess string) Feedback {
	if len(secret) == 0 || len(secret) != len(guess) {
		panic(fmt.Sprintf("game: classify needs equal non-empty words, got %d and %d letters", len(secret), len(guess)))
	}

	n := len(secret)
	res := make(Feedback, n)

	// Letter counts for the non-exact secret positions; budget policy only.
	var counts [256]int

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkExact
		} else {
			counts[secret[i]]++
		}
	}

	// Second pass: present/absent for the rest.
	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		c := guess[i]
		switch policy {
		case PolicyLetterBudget:
			if counts[c] > 0 {
				res[i] = MarkPresent
				counts[c]--
			} else {
				res[i] = MarkAbsent
			}
		default:
			if strings.IndexByte(secret, c) >= 0 {
				res[i] = MarkPresent
			} else {
				res[i] = MarkAbsent
			}
		}
	}
	return res
}
