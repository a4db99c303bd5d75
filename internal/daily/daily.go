// apps/go-cli/internal/daily/daily.go
//
// Daily secret policy: every player gets the same answer on the same UTC day.
// The word index is HMAC-SHA256(salt, YYYY-MM-DD) mod len(answers), so the
// sequence is stable for a salt but not guessable without it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Chooser implements words.Chooser with the date-seeded index.
type Chooser struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

var _ words.Chooser = Chooser{}

// Choose picks today's answer.
func (c Chooser) Choose(answers []string) (string, error) {
	if len(answers) == 0 {
		return "", words.ErrEmptyDictionary
	}
	return answers[WordIndex(c.now(), c.Salt, len(answers))], nil
}

// Date is the key of the day Choose would use.
func (c Chooser) Date() string { return DateKey(c.now()) }

func (c Chooser) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
