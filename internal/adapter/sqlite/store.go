// Package sqlite implements the ledger store on an embedded SQLite database.
// This is the default backend: one file per device, no server, safe across
// process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"github.com/vocabloom/progress-engine/internal/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger (
    profile    TEXT NOT NULL,
    key        TEXT NOT NULL,
    value      BLOB NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (profile, key)
);`

// Store is a ledger store scoped to one profile inside a SQLite file.
type Store struct {
	db      *sql.DB
	profile string
}

// Open opens (creating if needed) the database at path and binds the store to
// the given profile. Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path, profile string) (*Store, error) {
	if profile == "" {
		return nil, fmt.Errorf("profile must not be empty: %w", domain.ErrValidation)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// A single writer keeps the WAL small and avoids SQLITE_BUSY under the
	// service's serialized mutation path.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ledger schema: %w", err)
	}

	return &Store{db: db, profile: profile}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the value for key, or domain.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("ledger").
		Where(sq.Eq{"profile": s.profile, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	return value, nil
}

// Save stores value under key, overwriting any previous value.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("ledger").
		Columns("profile", "key", "value", "updated_at").
		Values(s.profile, key, value, time.Now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT (profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("ledger").
		Where(sq.Eq{"profile": s.profile, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
