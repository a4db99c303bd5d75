package daily_test

import (
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestDateKeyIsUTC(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*60*60)
	got := daily.DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc))
	if got != "2026-03-01" {
		t.Fatalf("DateKey = %s", got)
	}
}

func TestWordIndexStableAndBounded(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	a := daily.WordIndex(day, "salt", 400)
	b := daily.WordIndex(day.Add(-11*time.Hour), "salt", 400)
	if a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 400 {
		t.Fatalf("index %d out of range", a)
	}
	if daily.WordIndex(day, "salt", 0) != 0 {
		t.Fatalf("empty list should give 0")
	}

	// Over a month the index should not be constant.
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[daily.WordIndex(day.AddDate(0, 0, i), "salt", 400)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("index never changes across days")
	}
}

func TestChooser(t *testing.T) {
	t.Parallel()
	answers := []string{"CRANE", "TRACE", "SLATE", "ADIEU"}
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	c := daily.Chooser{Salt: "s", Now: func() time.Time { return day }}

	w1, err := c.Choose(answers)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	w2, _ := c.Choose(answers)
	if w1 != w2 || w1 != answers[daily.WordIndex(day, "s", len(answers))] {
		t.Fatalf("unstable choice %s/%s", w1, w2)
	}
	if c.Date() != "2026-10-19" {
		t.Fatalf("Date = %s", c.Date())
	}
	if _, err := c.Choose(nil); !errors.Is(err, words.ErrEmptyDictionary) {
		t.Fatalf("empty list: %v", err)
	}
}
