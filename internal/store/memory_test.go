package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

var later = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

type anyWord struct{}

func (anyWord) Contains(string) bool { return true }

func TestMemoryStoreLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemoryStore()

	s, err := game.NewSession("CRANE", 6, anyWord{}, game.WithID("g1"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := st.Save(ctx, s, later); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d", st.Len())
	}

	err = st.Update(ctx, "g1", func(s *game.Session) error {
		_, _, err := s.SubmitGuess("TRACE")
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	var attempts int
	_ = st.Get(ctx, "g1", func(s *game.Session) error {
		attempts = s.Attempts()
		return nil
	})
	if attempts != 1 {
		t.Fatalf("attempts = %d", attempts)
	}

	if err := st.Get(ctx, "nope", func(*game.Session) error { return nil }); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get missing: %v", err)
	}
	if err := st.Update(ctx, "nope", func(*game.Session) error { return nil }); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Update missing: %v", err)
	}
	_ = st.Delete(ctx, "g1")
	if st.Len() != 0 {
		t.Fatalf("Len after delete = %d", st.Len())
	}
}

func TestMemoryStoreSerializesGuesses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemoryStore()
	s, _ := game.NewSession("CRANE", 6, anyWord{}, game.WithID("g"))
	_ = st.Save(ctx, s, later)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		terminal int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update(ctx, "g", func(s *game.Session) error {
				_, _, err := s.SubmitGuess("BUILT")
				return err
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, game.ErrSessionTerminal):
				terminal++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	if accepted != 6 || terminal != 14 {
		t.Fatalf("accepted=%d terminal=%d", accepted, terminal)
	}
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := store.NewMemoryStore()
	s, _ := game.NewSession("CRANE", 6, anyWord{})
	if err := st.Save(ctx, s, later); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save with cancelled ctx: %v", err)
	}
}

func TestMemoryStoreSweepDropsExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemoryStore()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	for id, exp := range map[string]time.Time{
		"old":   now.Add(-time.Minute),
		"edge":  now,
		"fresh": now.Add(time.Hour),
	} {
		s, _ := game.NewSession("CRANE", 6, anyWord{}, game.WithID(id))
		if err := st.Save(ctx, s, exp); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	n, err := st.Sweep(ctx, now)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if n != 2 || st.Len() != 1 {
		t.Fatalf("swept=%d left=%d", n, st.Len())
	}
	if err := st.Get(ctx, "fresh", func(*game.Session) error { return nil }); err != nil {
		t.Fatalf("fresh session gone: %v", err)
	}
	if err := st.Get(ctx, "old", func(*game.Session) error { return nil }); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("old session kept: %v", err)
	}
}
