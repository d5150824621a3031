package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedKV wraps a KV backend with an expirable LRU so hot keys (the wallet
// balance, the inventory blob) are served without a round trip. Writes go
// through to the backend first; the cache is only updated after the backend
// accepts the value, so a failed write never leaves a stale hit behind.
type CachedKV struct {
	backend KV
	lru     *expirable.LRU[string, string]
}

// NewCachedKV creates a read-through cache in front of backend.
// size: maximum number of cached keys
// ttl: time-to-live for cached entries
func NewCachedKV(backend KV, size int, ttl time.Duration) *CachedKV {
	return &CachedKV{
		backend: backend,
		lru:     expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Get implements KV.
func (c *CachedKV) Get(ctx context.Context, key string) (string, bool, error) {
	if value, found := c.lru.Get(key); found {
		return value, true, nil
	}

	value, found, err := c.backend.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if found {
		c.lru.Add(key, value)
	}
	return value, found, nil
}

// Set implements KV.
func (c *CachedKV) Set(ctx context.Context, key, value string) error {
	if err := c.backend.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, value)
	return nil
}

// Close releases the backend if it holds external resources.
func (c *CachedKV) Close() {
	if closer, ok := c.backend.(Closer); ok {
		closer.Close()
	}
}
