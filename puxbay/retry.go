package puxbay

import (
	"context"
	"math"
	"net/http"
	"time"
)

// backoff returns the delay before retry n (0-indexed): base * 2^n, capped
// by limit when limit is positive. Doubling saturates instead of overflowing.
func backoff(base, limit time.Duration, n int) time.Duration {
	d := base
	for i := 0; i < n; i++ {
		if limit > 0 && d >= limit {
			break
		}
		if d > math.MaxInt64/2 {
			d = math.MaxInt64
			break
		}
		d *= 2
	}
	if limit > 0 && d > limit {
		d = limit
	}
	return d
}

// isRetryableStatus reports whether a response status is transient.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		(statusCode >= 500 && statusCode <= 599)
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
