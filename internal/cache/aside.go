package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"clockinout/internal/lib/sl"
)

// GetOrFetch serves key from the store when a valid entry exists, otherwise
// runs fetch against the source of truth and fills the cache. Every store
// error on the read path is treated as a miss: a broken cache degrades to
// direct database reads, it never fails a request. A failed fill is logged
// and ignored for the same reason.
//
// Concurrent misses on the same key may both fetch and both fill; last write
// wins and the entry self-heals within one TTL window.
func GetOrFetch[T any](
	ctx context.Context,
	store Store,
	log *slog.Logger,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	var result T

	cached, err := store.Get(ctx, key)
	if err == nil && len(cached) > 0 {
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
		log.Warn("discarding undecodable cache entry", slog.String("key", key))
	} else if err != nil && !errors.Is(err, ErrMiss) {
		log.Warn("cache read failed, falling through to store", slog.String("key", key), sl.Err(err))
	}

	result, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	serialized, err := json.Marshal(result)
	if err != nil {
		log.Warn("failed to serialize cache entry", slog.String("key", key), sl.Err(err))
		return result, nil
	}

	if err := store.Set(ctx, key, serialized, ttl); err != nil {
		log.Warn("failed to fill cache", slog.String("key", key), sl.Err(err))
	}

	return result, nil
}

// Invalidate deletes the given keys after a successful database mutation.
// It must only be called once the commit is acknowledged. Deletion failures
// leave a stale entry that dies with its TTL, so they are logged rather than
// surfaced: the mutation is already committed and stays reported as success.
func Invalidate(ctx context.Context, store Store, log *slog.Logger, keys ...string) {
	if err := store.Delete(ctx, keys...); err != nil {
		log.Warn("cache invalidation failed, stale entries persist until TTL",
			slog.Any("keys", keys), sl.Err(err))
	}
}
