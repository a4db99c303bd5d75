package words_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func openStore(t *testing.T, path string) *words.Store {
	t.Helper()
	st, err := words.OpenStore(path)
	if err != nil {
		if strings.Contains(err.Error(), "CGO_ENABLED=0") {
			t.Skipf("sqlite3 driver needs cgo: %v", err)
		}
		t.Fatalf("OpenStore: %v", err)
	}
	return st
}

func TestStoreImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	st := openStore(t, path)
	d, err := words.NewDictionary([]string{"crane", "trace"}, []string{"adieu"}, 5)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	if err := st.Import(ctx, d); err != nil {
		t.Fatalf("Import: %v", err)
	}
	// Re-import replaces rather than appends.
	d2, _ := words.NewDictionary([]string{"slate"}, []string{"adieu", "irate"}, 5)
	if err := st.Import(ctx, d2); err != nil {
		t.Fatalf("Import again: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen: migrations must be idempotent.
	got, err := words.Load(ctx, words.LoadOptions{DBPath: path})
	if err != nil {
		t.Fatalf("Load from db: %v", err)
	}
	if strings.Join(got.Answers(), ",") != "SLATE" {
		t.Fatalf("answers = %v", got.Answers())
	}
	if a, g := got.Stats(); a != 1 || g != 3 {
		t.Fatalf("stats = %d/%d", a, g)
	}
	if got.Contains("CRANE") {
		t.Fatalf("old import leaked")
	}
}

func TestStoreEmptyLength(t *testing.T) {
	t.Parallel()
	st := openStore(t, filepath.Join(t.TempDir(), "words.db"))
	defer st.Close()
	if _, err := st.Dictionary(context.Background(), 7); err == nil {
		t.Fatalf("no seven-letter words imported, expected error")
	}
}
