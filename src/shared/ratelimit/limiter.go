package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	goredis "github.com/go-redis/redis/v9"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	DefaultLimit  = 5
	DefaultWindow = 10 * time.Minute
)

//counterfeiter:generate . Limiter
type Limiter interface {
	// Allow counts one attempt for key and reports whether it is within the limit
	Allow(ctx context.Context, key string) (bool, error)
}

func NewRedisClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	options, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse redis URL")
	}

	options.MaxRetries = 3
	options.MinRetryBackoff = 50 * time.Millisecond
	options.MaxRetryBackoff = 2 * time.Second
	options.DialTimeout = 5 * time.Second
	options.ReadTimeout = 2 * time.Second
	options.WriteTimeout = 2 * time.Second
	options.MinIdleConns = 1
	options.ConnMaxIdleTime = time.Minute

	client := goredis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "Failed to ping redis")
	}

	return client, nil
}

var _ Limiter = RedisLimiter{}

// RedisLimiter is a fixed window counter: the first attempt in a window
// starts its expiry, every attempt increments it
type RedisLimiter struct {
	client *goredis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *goredis.Client, prefix string, limit int64, window time.Duration) RedisLimiter {
	return RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (r RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "Failed to count attempt")
	}

	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			return false, errors.Wrap(err, "Failed to set attempt window")
		}
	}

	return count <= r.limit, nil
}
