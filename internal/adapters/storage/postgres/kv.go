package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dog-license-application/internal/domain/applications"
)

// Esquema esperado:
//
//	CREATE TABLE kv_entries (
//	    k          TEXT PRIMARY KEY,
//	    v          BYTEA NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT v
		FROM kv_entries
		WHERE k = $1
	`, key)

	var v []byte
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("key %q: %w", key, applications.ErrNotFound)
		}
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (k, v, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (k) DO UPDATE
		SET v = EXCLUDED.v, updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// Remove es idempotente: borrar una clave ausente no es error.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv_entries
		WHERE k = $1
	`, key)
	if err != nil {
		return fmt.Errorf("kv remove %q: %w", key, err)
	}
	return nil
}
