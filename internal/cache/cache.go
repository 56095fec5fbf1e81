// Package cache implements the cache-aside layer: a byte-oriented key-value
// store contract plus the read-through / write-through-invalidation helpers
// the services are built on. Cached values are derived copies; the database
// stays authoritative.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is the contract a cache backend has to satisfy. Key operations are
// independent: there are no transactional guarantees across keys, and
// deleting an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
