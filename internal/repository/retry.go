package repo

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
)

const maxRetries = 4

// withRetry re-runs fn with exponential backoff while it keeps failing with
// a transient connection-level fault. Any other error is returned as-is on
// the first attempt.
func withRetry(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 5 * time.Second

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}

// isTransient reports whether err is worth retrying: a broken driver
// connection or a Postgres connection-exception / shutdown condition.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		if pgErr.Code.Class() == "08" {
			return true
		}
		switch pgErr.Code {
		case "57P01", "57P02", "57P03":
			return true
		}
	}

	return false
}
