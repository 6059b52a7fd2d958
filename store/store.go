// Package store persists project documents in a local sqlite database,
// one JSON document per key.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tsawler/mcqsheet/internal/logger"
	"github.com/tsawler/mcqsheet/project"
)

// ErrNotFound is returned when no document is stored under a key.
var ErrNotFound = errors.New("project not found")

// Entry summarises a stored document.
type Entry struct {
	Key         string
	ProjectName string
	Lessons     int
	Questions   int
	UpdatedAt   time.Time
}

// Store wraps the database connection.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	key          TEXT PRIMARY KEY,
	project_name TEXT NOT NULL,
	version      INTEGER NOT NULL,
	lessons      INTEGER NOT NULL,
	questions    INTEGER NOT NULL,
	document     TEXT NOT NULL,
	updated_at   DATETIME NOT NULL
);`

// Open opens or creates the database at path. Use ":memory:" for a
// throwaway store.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := configure(db, path); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, log: logger.OrNop(log)}, nil
}

func configure(db *sql.DB, path string) error {
	// A single writer avoids SQLITE_BUSY; an in-memory database also needs
	// one connection to stay alive.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return err
		}
	}
	_, err := db.Exec("PRAGMA busy_timeout=5000;")
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save validates doc and stores it under key, replacing any previous
// document.
func (s *Store) Save(ctx context.Context, key string, doc *project.Document) error {
	if key == "" {
		return errors.New("empty storage key")
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := project.Encode(&buf, doc); err != nil {
		return err
	}

	questions := 0
	for _, l := range doc.Lessons {
		questions += len(l.Questions)
	}

	query := `
		INSERT INTO projects (key, project_name, version, lessons, questions, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			project_name = excluded.project_name,
			version      = excluded.version,
			lessons      = excluded.lessons,
			questions    = excluded.questions,
			document     = excluded.document,
			updated_at   = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query,
		key, doc.ProjectName, doc.Version, len(doc.Lessons), questions, buf.String(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save project %q: %w", key, err)
	}

	s.log.Debug("project saved", "key", key, "lessons", len(doc.Lessons), "questions", questions)
	return nil
}

// Load returns the document stored under key.
func (s *Store) Load(ctx context.Context, key string) (*project.Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project %q: %w", key, err)
	}
	return project.Decode(bytes.NewReader([]byte(raw)))
}

// List returns every stored document, most recently saved first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, project_name, lessons, questions, updated_at
		FROM projects
		ORDER BY updated_at DESC, key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.ProjectName, &e.Lessons, &e.Questions, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the document stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete project %q: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return nil
}

// KeyedSaver binds the store to one key, for use as a workspace autosave
// target.
type KeyedSaver struct {
	store *Store
	key   string
}

// Saver returns an autosave target writing under key.
func (s *Store) Saver(key string) *KeyedSaver {
	return &KeyedSaver{store: s, key: key}
}

// Save stores doc under the bound key.
func (a *KeyedSaver) Save(doc *project.Document) error {
	return a.store.Save(context.Background(), a.key, doc)
}
