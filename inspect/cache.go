package inspect

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bladegen/bladegen/schema"
)

// A Cache stores table snapshots on disk, msgpack-encoded, so repeated
// runs against the same database skip the round trip. Entries expire
// by file modification time.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache returns a snapshot cache rooted at dir. A zero ttl disables
// expiration.
func NewCache(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl}
}

// Key derives the cache file name for a dsn/table pair. The dsn is
// hashed so credentials never appear on disk.
func (c *Cache) Key(dsn, table string) string {
	sum := sha256.Sum256([]byte(dsn + "\x00" + table))
	return hex.EncodeToString(sum[:16]) + ".snapshot"
}

// Get loads a cached snapshot. The second return value reports a hit.
func (c *Cache) Get(key string) (*schema.Table, bool) {
	path := filepath.Join(c.dir, key)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		os.Remove(path)
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var t schema.Table
	if err := msgpack.Unmarshal(data, &t); err != nil {
		// A corrupt snapshot is dropped, not surfaced.
		os.Remove(path)
		return nil, false
	}
	return &t, true
}

// Put stores a snapshot under the given key.
func (c *Cache) Put(key string, t *schema.Table) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("inspect: cache dir: %w", err)
	}
	data, err := msgpack.Marshal(t)
	if err != nil {
		return fmt.Errorf("inspect: encode snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("inspect: write snapshot: %w", err)
	}
	return nil
}

// A CachedSource wraps a Source with a snapshot cache. Table listings
// are never cached; only per-table snapshots are.
type CachedSource struct {
	src   Source
	cache *Cache
	dsn   string
}

// WithCache wraps src so table snapshots are served from cache when
// present. The dsn participates in cache keys only.
func WithCache(src Source, cache *Cache, dsn string) *CachedSource {
	return &CachedSource{src: src, cache: cache, dsn: dsn}
}

// Tables implements Source.
func (c *CachedSource) Tables(ctx context.Context) ([]string, error) {
	return c.src.Tables(ctx)
}

// Table implements Source.
func (c *CachedSource) Table(ctx context.Context, name string) (*schema.Table, error) {
	key := c.cache.Key(c.dsn, name)
	if t, ok := c.cache.Get(key); ok {
		return t, nil
	}
	t, err := c.src.Table(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Put(key, t); err != nil {
		return nil, err
	}
	return t, nil
}
