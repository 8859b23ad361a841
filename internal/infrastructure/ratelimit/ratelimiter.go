package ratelimit

import "time"

// Limits caps attempts over sliding windows. A zero limit disables the
// corresponding window.
type Limits struct {
	PerMinute int
	PerHour   int
}

type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
