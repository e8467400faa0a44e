package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisProfileRepository guarda perfiles sin expiración.
type RedisProfileRepository struct {
	client  redisKVClient
	timeout time.Duration
}

func NewRedisProfileRepository(client *redis.Client) *RedisProfileRepository {
	if client == nil {
		return nil
	}
	return &RedisProfileRepository{client: client, timeout: 500 * time.Millisecond}
}

func (r *RedisProfileRepository) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisProfileRepository) Put(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.Set(ctx, key, data, 0).Err()
}
