package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// CacheStore implements ports.LookupCache on the cache table.
type CacheStore struct {
	db db
}

// NewCacheStore returns a CacheStore backed by db.
func NewCacheStore(db db) *CacheStore {
	return &CacheStore{db: db}
}

// Get returns the value for key unless it is missing or expired.
func (c *CacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM cache WHERE key = @key AND expires_at > now()`

	var value []byte
	err := c.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("postgres.CacheStore.Get: %w", err)
	}
	return value, true, nil
}

// Set upserts key with a fresh expiry. value must be valid JSON.
func (c *CacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	const q = `
		INSERT INTO cache (key, value, expires_at)
		VALUES (@key, @value::jsonb, now() + make_interval(secs => @ttl_seconds::float8))
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	args := pgx.NamedArgs{
		"key":         key,
		"value":       string(value),
		"ttl_seconds": ttl.Seconds(),
	}

	if _, err := c.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("postgres.CacheStore.Set: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired entries and returns how many were removed.
func (c *CacheStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := c.db.Exec(ctx, `DELETE FROM cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("postgres.CacheStore.PurgeExpired: %w", err)
	}
	return tag.RowsAffected(), nil
}
