// apps/go-cli/internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files, the SQLite word store,
//     or fall back to the embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Act as the game.Vocabulary collaborator (Contains).
//
// Word Lists:
//   - "answers": secret candidates (exactly WordLength letters A–Z).
//   - "allowed": valid guesses (always includes answers).
//
// Load resolution order:
//   1. AnswersFile and AllowedFile both set → answers from the first, guesses from the second.
//   2. Only AllowedFile set → one dictionary used for both answers and guesses.
//   3. Only AnswersFile set → likewise, that file is the whole dictionary.
//   4. DBPath set → lists previously imported into the SQLite word store.
//   5. Otherwise → embedded defaults.
//
// Constraints:
//   • Lists are normalized to uppercase; anything that is not WordLength
//     letters A–Z is dropped.
package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrEmptyDictionary is returned when no answer words survive loading.
var ErrEmptyDictionary = errors.New("words: answers list is empty")

// Dictionary is an immutable answers list plus the allowed-guess set.
type Dictionary struct {
	length     int
	answers    []string            // canonical answers, load order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// LoadOptions selects the word list source.
type LoadOptions struct {
	AnswersFile string
	AllowedFile string
	DBPath      string
	WordLength  int // defaults to game.DefaultWordLength
}

// NewDictionary builds a dictionary from raw lists. Words are normalized and
// filtered to length; answers are always allowed guesses.
func NewDictionary(answers, allowed []string, length int) (*Dictionary, error) {
	if length <= 0 {
		length = game.DefaultWordLength
	}
	d := &Dictionary{
		length:     length,
		answersSet: make(map[string]struct{}),
		allowedSet: make(map[string]struct{}),
	}
	for _, w := range answers {
		w = game.Normalize(w)
		if !valid(w, length) {
			continue
		}
		if _, dup := d.answersSet[w]; dup {
			continue
		}
		d.answers = append(d.answers, w)
		d.answersSet[w] = struct{}{}
		d.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = game.Normalize(w); valid(w, length) {
			d.allowedSet[w] = struct{}{}
		}
	}
	if len(d.answers) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// Load resolves the configured source (see package doc) into a Dictionary.
func Load(ctx context.Context, opts LoadOptions) (*Dictionary, error) {
	if opts.WordLength <= 0 {
		opts.WordLength = game.DefaultWordLength
	}
	switch {
	// Case 1: both lists provided
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		ans, err := readWordFile(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		all, err := readWordFile(opts.AllowedFile)
		if err != nil {
			return nil, err
		}
		return NewDictionary(ans, all, opts.WordLength)

	// Case 2: only allowed file provided → use for both
	case opts.AllowedFile != "":
		all, err := readWordFile(opts.AllowedFile)
		if err != nil {
			return nil, err
		}
		return NewDictionary(all, nil, opts.WordLength)

	// Case 3: only answers file provided → use for both
	case opts.AnswersFile != "":
		ans, err := readWordFile(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		return NewDictionary(ans, nil, opts.WordLength)

	// Case 4: SQLite word store
	case opts.DBPath != "":
		st, err := OpenStore(opts.DBPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Dictionary(ctx, opts.WordLength)

	// Case 5: fallback to embedded defaults
	default:
		ans, err := readEmbedded(assets.Answers)
		if err != nil {
			return nil, err
		}
		all, err := readEmbedded(assets.Allowed)
		if err != nil {
			return nil, err
		}
		return NewDictionary(ans, all, opts.WordLength)
	}
}

// ReadWords reads one word per line, skipping blanks and '#' comments.
// Words are returned unfiltered; NewDictionary normalizes them.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		// The original dictionary format allowed several words per line.
		for _, w := range strings.Fields(sc.Text()) {
			if strings.HasPrefix(w, "#") {
				break
			}
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// readWordFile loads ReadWords from a path.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	ws, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ws, nil
}

// readEmbedded loads ReadWords from one of the assets lists.
func readEmbedded(name string) ([]string, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", name, err)
	}
	defer f.Close()
	return ReadWords(f)
}

func valid(w string, length int) bool {
	return len(w) == length && game.IsAlpha(w)
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.allowedSet[game.Normalize(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[game.Normalize(w)]
	return ok
}

// Answers returns a copy of the answers list.
func (d *Dictionary) Answers() []string {
	return append([]string(nil), d.answers...)
}

// Allowed returns the guess-only words (allowed minus answers), sorted.
func (d *Dictionary) Allowed() []string {
	out := make([]string, 0, len(d.allowedSet)-len(d.answersSet))
	for w := range d.allowedSet {
		if _, ans := d.answersSet[w]; !ans {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// WordLength is the length every word in the dictionary has.
func (d *Dictionary) WordLength() int { return d.length }

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}
