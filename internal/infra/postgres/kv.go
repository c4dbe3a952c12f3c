package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVStore implements the durable key-value contract on a single kv_state
// table. Values are opaque to the database; all structure lives in the
// serialized payloads.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore creates a KVStore over the given pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Migrate ensures the kv_state table exists.
func (s *KVStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_state (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate kv_state: %w", err)
	}

	return nil
}

// Get returns the committed value for key, or found=false if absent.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM kv_state WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	return value, true, nil
}

// Set replaces the value under key wholesale.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

// Delete removes the value under key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_state WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}
