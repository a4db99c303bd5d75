// apps/go-cli/internal/words/sqlite.go
//
// SQLite-backed word store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the versioned schema below (idempotent, recorded in _migrations).
//   - Importing a Dictionary and reading it back for a given word length.
//
// Only word lists live here; no game state is ever written.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migrations are applied in order; names are recorded once applied.
var migrations = []struct {
	name string
	sql  string
}{
	{"001_words.sql", `
CREATE TABLE IF NOT EXISTS words (
  word   TEXT    NOT NULL,
  length INTEGER NOT NULL,
  kind   TEXT    NOT NULL CHECK (kind IN ('answer', 'allowed')),
  PRIMARY KEY (word, kind)
);`},
	{"002_words_length_idx.sql", `CREATE INDEX IF NOT EXISTS words_length_idx ON words(length, kind);`},
}

// Store is the SQLite word store.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and creates if missing) the word DB at path and migrates it.
func OpenStore(path string) (*Store, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies pending migrations, each inside its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Debug().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// Import replaces every stored word of d's length with d's lists.
func (s *Store) Import(ctx context.Context, d *Dictionary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE length=?`, d.WordLength()); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, length, kind) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range d.answers {
		if _, err := stmt.ExecContext(ctx, w, len(w), "answer"); err != nil {
			return fmt.Errorf("insert answer %s: %w", w, err)
		}
	}
	for _, w := range d.Allowed() {
		if _, err := stmt.ExecContext(ctx, w, len(w), "allowed"); err != nil {
			return fmt.Errorf("insert allowed %s: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	log.Info().Int("length", d.WordLength()).Int("answers", len(d.answers)).Msg("imported word lists")
	return nil
}

// Dictionary reads the stored lists for the given word length.
func (s *Store) Dictionary(ctx context.Context, length int) (*Dictionary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, kind FROM words WHERE length=? ORDER BY kind, rowid`, length)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var answers, allowed []string
	for rows.Next() {
		var w, kind string
		if err := rows.Scan(&w, &kind); err != nil {
			return nil, err
		}
		if kind == "answer" {
			answers = append(answers, w)
		} else {
			allowed = append(allowed, w)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(answers, allowed, length)
}
