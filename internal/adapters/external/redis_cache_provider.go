package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/pkg/errors"
)

const clearScanBatch = 100

// RedisCacheProviderAdapter implements CacheProvider port using Redis.
// Keys are namespaced with a prefix so several services can share one database.
type RedisCacheProviderAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisCacheProviderAdapter creates a new Redis cache provider adapter
func NewRedisCacheProviderAdapter(config *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisCacheProviderAdapter) key(k string) string {
	return r.prefix + k
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value in Redis. A zero TTL keeps the key until it is overwritten.
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("cache TTL cannot be negative")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key under the adapter's prefix. Without a prefix the whole database is flushed.
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear operation failed", err)
		}
		return nil
	}

	iter := r.client.Scan(ctx, 0, r.prefix+"*", clearScanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan operation failed", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.NewExternalAPIError("redis clear operation failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
