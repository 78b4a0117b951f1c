package cache

import (
	"context"
	"time"
)

// Limiter budgets hits per key
type Limiter interface {
	// Allow records a hit for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (bool, error)
}

// windowStart truncates now to the start of its window
func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}
