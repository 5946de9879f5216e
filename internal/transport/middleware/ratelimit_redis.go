package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed one-minute window counter shared across instances.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a limiter storing counters under prefix.
func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{client: client, prefix: prefix, now: time.Now}
}

// Allow increments the counter for key in the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string, maxPerMinute int) (bool, time.Duration, error) {
	now := l.now()
	window := now.Truncate(time.Minute)
	counterKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, window.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, time.Minute+5*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis limiter: %w", err)
	}

	if incr.Val() > int64(maxPerMinute) {
		return false, window.Add(time.Minute).Sub(now), nil
	}
	return true, 0, nil
}
