package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/walletscan/internal/config"
)

// cacheFileName is the cache database file inside the cache directory.
const cacheFileName = "walletscan.db"

// Cache is a bounded key-value store with per-entry expiry, backed by a
// SQLite file so repeat scans survive process restarts.
//
// Design decision: SQLite rather than an in-memory map because the CLI
// is short-lived; an in-memory cache would never produce a hit across
// invocations. The serve command benefits from the same store without a
// second code path.
type Cache struct {
	db       *sql.DB
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheTTL sets how long entries stay fresh.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheCapacity sets the maximum number of entries. When an insert
// would exceed it, the oldest entries are evicted first.
func WithCacheCapacity(capacity int) CacheOption {
	return func(c *Cache) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// OpenCache opens or creates the cache database under dir.
func OpenCache(dir string, opts ...CacheOption) (*Cache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	path := filepath.Join(dir, cacheFileName)
	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// SQLite supports only one writer; a second connection buys nothing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	c := &Cache{
		db:       db,
		ttl:      config.DefaultCacheTTL,
		capacity: config.DefaultCacheCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.createTable(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return c, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// createTable creates the cache schema if it does not exist.
func (c *Cache) createTable() error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		created_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_responses_created ON responses(created_at);
	CREATE INDEX IF NOT EXISTS idx_responses_expires ON responses(expires_at);
	`
	_, err := c.db.ExecContext(context.Background(), schema)
	return err
}

// Get returns the cached value for key and whether a fresh entry exists.
// Expired entries are treated as misses and removed lazily.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt int64

	row := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM responses WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	if c.now().Unix() >= expiresAt {
		if _, err := c.db.ExecContext(ctx, "DELETE FROM responses WHERE key = ?", key); err != nil {
			return nil, false, fmt.Errorf("drop expired cache entry: %w", err)
		}
		return nil, false, nil
	}
	return value, true, nil
}

// Put stores a value under key with the configured TTL, evicting the
// oldest entries when the capacity bound would be exceeded.
func (c *Cache) Put(ctx context.Context, key string, value []byte) error {
	now := c.now()
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO responses (key, value, created_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at`,
		key, value, now.Unix(), now.Add(c.ttl).Unix())
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return c.evict(ctx)
}

// evict removes expired entries, then the oldest entries beyond capacity.
func (c *Cache) evict(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx,
		"DELETE FROM responses WHERE expires_at <= ?", c.now().Unix()); err != nil {
		return fmt.Errorf("evict expired cache entries: %w", err)
	}

	_, err := c.db.ExecContext(ctx, `
		DELETE FROM responses WHERE key IN (
			SELECT key FROM responses
			ORDER BY created_at DESC
			LIMIT -1 OFFSET ?
		)`, c.capacity)
	if err != nil {
		return fmt.Errorf("evict over-capacity cache entries: %w", err)
	}
	return nil
}

// Len returns the current number of entries, expired ones included.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var count int
	row := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM responses")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}
