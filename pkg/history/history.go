// Package history keeps a SQLite transcript of interpreter sessions: every
// evaluated input with its printed result or error kind.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dimbata23/minischeme/pkg/runtime"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session    TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	input      TEXT    NOT NULL,
	output     TEXT    NOT NULL,
	error_kind TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_session ON entries(session, seq);
`

// Store is an open transcript database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded evaluation.
type Entry struct {
	Session   string
	Seq       int
	Input     string
	Output    string
	ErrorKind string
	CreatedAt time.Time
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Session groups the entries recorded by one interpreter run.
type Session struct {
	ID    string
	store *Store
	seq   int
}

// NewSession starts a session with a fresh random identifier.
func (s *Store) NewSession() *Session {
	return &Session{ID: uuid.NewString(), store: s}
}

// Record stores one evaluation. On failure the output is the error text and
// the error kind is recorded alongside it.
func (s *Session) Record(ctx context.Context, input, output string, evalErr error) error {
	kind := ""
	if evalErr != nil {
		kind = runtime.ErrorKind(evalErr)
		if kind == "" {
			kind = "Error"
		}
		output = evalErr.Error()
	}

	s.seq++
	_, err := s.store.db.ExecContext(ctx,
		`INSERT INTO entries (session, seq, input, output, error_kind, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.seq, input, output, kind, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Entries returns the entries of a session in evaluation order.
func (s *Store) Entries(ctx context.Context, session string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session, seq, input, output, error_kind, created_at FROM entries WHERE session = ? ORDER BY seq`,
		session)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.Session, &e.Seq, &e.Input, &e.Output, &e.ErrorKind, &created); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	return out, nil
}

// Recent returns up to limit distinct inputs across all sessions, oldest
// first, ready to seed a line editor.
func (s *Store) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT input FROM entries GROUP BY input ORDER BY MAX(id) DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var input string
		if err := rows.Scan(&input); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, input)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
