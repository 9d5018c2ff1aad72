package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "aiflow:seq:"

// Redis keeps counters in Redis so several API replicas share one sequence per kind.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis connects to the Redis server at url (redis://host:port/db) and pings it.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisWithClient(client, defaultKeyPrefix), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Next(ctx context.Context, kind string) (int64, error) {
	id, err := r.client.Incr(ctx, r.prefix+kind).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", kind, err)
	}

	return id, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
