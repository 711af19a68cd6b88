package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter throttles requests per key over a fixed window using a
// Redis counter with a TTL. Key format: ratelimit:<key>:<window_number>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether the request identified by key is within the limit.
// A Redis failure fails open: the request is allowed and the error returned
// so the caller can log it.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *FixedWindowLimiter) key(key string) string {
	// Bucket in nanoseconds so sub-second windows divide cleanly.
	window := time.Now().UnixNano() / int64(l.window)
	return fmt.Sprintf("ratelimit:%s:%d", key, window)
}
