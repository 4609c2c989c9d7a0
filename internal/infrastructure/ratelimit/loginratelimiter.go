package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLoginRateLimiter throttles login attempts per username. Only failed
// attempts count against the limit; a successful login clears the counter.
type RedisLoginRateLimiter struct {
	client   *redis.Client
	maxFails int
	window   time.Duration
}

func NewRedisLoginRateLimiter(client *redis.Client, maxFails int, window time.Duration) *RedisLoginRateLimiter {
	return &RedisLoginRateLimiter{
		client:   client,
		maxFails: maxFails,
		window:   window,
	}
}

func (l *RedisLoginRateLimiter) Allow(ctx context.Context, username string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login failure count: %w", err)
	}
	return count < int64(l.maxFails), nil
}

func (l *RedisLoginRateLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}

	_ = incr.Val()
	return nil
}

func (l *RedisLoginRateLimiter) Reset(ctx context.Context, username string) error {
	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login failure count: %w", err)
	}
	return nil
}

func (l *RedisLoginRateLimiter) key(username string) string {
	return fmt.Sprintf("loginfail:%s", strings.ToLower(strings.TrimSpace(username)))
}
