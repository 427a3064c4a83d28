package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// kvTimeout bounds a single KV statement; the KV interface carries no context.
const kvTimeout = 5 * time.Second

// KVStore is a string-keyed byte store in the kv_store table. Its method
// set matches the Get/Set subset of fiber.Storage.
type KVStore struct {
	db *DB
}

// NewKVStore creates a KV store backed by the database.
func NewKVStore(database *DB) *KVStore {
	return &KVStore{db: database}
}

// Get returns the value for key, or nil if it is missing or expired.
func (s *KVStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()

	var val []byte
	err := s.db.Pool.QueryRow(ctx, `
		SELECT value FROM kv_store
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`, key).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return val, nil
}

// Set stores val under key, replacing any previous value. A zero exp
// never expires.
func (s *KVStore) Set(key string, val []byte, exp time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}

	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()

	var expiresAt *time.Time
	if exp > 0 {
		t := time.Now().Add(exp)
		expiresAt = &t
	}

	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`, key, val, expiresAt)
	return err
}

// DeleteExpired removes expired entries and returns how many were removed.
func (s *KVStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM kv_store WHERE expires_at IS NOT NULL AND expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
