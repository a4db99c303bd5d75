// apps/go-cli/internal/store/memory.go
//
// In-memory session store used by the HTTP front end.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Update runs its callback under the write lock, so SubmitGuess calls on
//     any session are serialized (game.Session is not safe for concurrent use).
//   - Each entry carries an expiry; Sweep drops sessions past it so a
//     long-running server does not keep unreachable games forever.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the holding interface for live sessions.
type Store interface {
	// Save persists or replaces a session under its ID until expires.
	Save(ctx context.Context, s *game.Session, expires time.Time) error

	// Get runs fn with the session under a read lock.
	Get(ctx context.Context, id string, fn func(*game.Session) error) error

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete drops a session; unknown IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions whose expiry is not after now and reports how many went.
	Sweep(ctx context.Context, now time.Time) (int, error)

	// Len reports the number of held sessions.
	Len() int
}

type entry struct {
	session *game.Session
	expires time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex     // guards sessions and their contents
	sessions map[string]entry // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]entry)}
}

func (m *memory) Save(ctx context.Context, s *game.Session, expires time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = entry{session: s, expires: expires}
	return nil
}

func (m *memory) Get(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(e.session)
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(e.session)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if !e.expires.After(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
