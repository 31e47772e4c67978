package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Storage wraps the redis connection holding active sessions.
type Storage struct {
	Client *redis.Client
}

func New(ctx context.Context, addr string) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{Client: client}, nil
}

func (that *Storage) Close() error {
	if err := that.Client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	return nil
}
