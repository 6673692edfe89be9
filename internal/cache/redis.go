package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements StatusCache over go-redis with a fixed TTL per entry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedis(cfg RedisConfig, ttl time.Duration) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetStatus(ctx context.Context, orderID string) (string, bool, error) {
	val, err := r.client.Get(ctx, Key(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get %q: %w", orderID, err)
	}
	return val, true, nil
}

func (r *Redis) SetStatus(ctx context.Context, orderID, status string) error {
	if err := r.client.Set(ctx, Key(orderID), status, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", orderID, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
