// Package cache manages the Redis client used for the session store.
package cache

import (
	"context"
	"time"

	"inkwell/internal/observability"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to Redis at addr. When Redis is unreachable the
// client is left nil and the application falls back to in-process session
// storage.
func InitRedis(addr string) {
	c := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("Redis unreachable, sessions fall back to in-process store", "error", err)
		client = nil
		return
	}

	observability.Logger.Info("Redis connected successfully")
	client = c
}

// GetClient returns the shared Redis client, or nil when Redis is
// unavailable.
func GetClient() *redis.Client {
	return client
}
