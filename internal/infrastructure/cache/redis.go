package cache

import (
	"context"
	"time"

	"printlite/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisQuoteCache caches quick-quote breakdowns in Redis. Quotes are
// deterministic over their inputs, so entries can never go stale within
// their TTL.

type RedisQuoteCache struct {
	client *redis.Client
}

var _ interfaces.IQuoteCache = (*RedisQuoteCache)(nil)

func NewRedisQuoteCache(addr string) *RedisQuoteCache {
	return &RedisQuoteCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns an empty string on a miss so callers need no redis.Nil checks.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
