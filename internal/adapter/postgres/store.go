// Package postgres implements the ledger store on PostgreSQL, for
// deployments where many devices sync through a shared database.
package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vocabloom/progress-engine/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store is a ledger store scoped to one profile.
type Store struct {
	pool    *pgxpool.Pool
	profile string
}

// NewStore binds a store to one profile over an existing pool.
func NewStore(pool *pgxpool.Pool, profile string) (*Store, error) {
	if profile == "" {
		return nil, fmt.Errorf("profile must not be empty: %w", domain.ErrValidation)
	}
	return &Store{pool: pool, profile: profile}, nil
}

// Load returns the value for key, or domain.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.Select("value").
		From("ledger").
		Where(sq.Eq{"profile": s.profile, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, key)
	}
	return value, nil
}

// Save stores value under key, overwriting any previous value.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query, args, err := builder.Insert("ledger").
		Columns("profile", "key", "value", "updated_at").
		Values(s.profile, key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := builder.Delete("ledger").
		Where(sq.Eq{"profile": s.profile, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}
