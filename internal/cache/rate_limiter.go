package cache

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter is a fixed-window counter backed by Redis, used to throttle
// the anonymous inquiry submission endpoint per client IP.
type RateLimiter struct {
	redis  *RedisClient
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit hits per window.
func NewRateLimiter(redis *RedisClient, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redis, limit: limit, window: window}
}

// Allow records a hit for the key and reports whether it is still within the
// window's budget.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	counterKey := fmt.Sprintf("ratelimit:%s", key)
	n, err := l.redis.Incr(ctx, counterKey)
	if err != nil {
		return false, err
	}
	// First hit in the window starts the clock.
	if n == 1 {
		if err := l.redis.Expire(ctx, counterKey, l.window); err != nil {
			return false, err
		}
	}
	return n <= int64(l.limit), nil
}
