package utils

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
)

// RedisFeedCache is the Redis-backed read-through cache for the global
// post feed. Values are stored without TTL; consistency comes from the
// delete-on-write contract in the post resolvers, not from expiry.
type RedisFeedCache struct {
	client *redis.Client
}

func NewRedisFeedCache() *RedisFeedCache {
	return &RedisFeedCache{
		client: redis.NewClient(&redis.Options{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		}),
	}
}

// Get returns the cached value and whether the key was present. A
// missing key is not an error.
func (c *RedisFeedCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisFeedCache) Set(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *RedisFeedCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
