package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/pkg/errors"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	_, validConfig := setupMockRedis(t)

	tests := []struct {
		name        string
		config      *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name:   "ValidConfig",
			config: validConfig,
		},
		{
			name: "InvalidAddress",
			config: &config.RedisConfig{
				Addr:         "invalid:address:port",
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
			expectError: true,
			errorType:   errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				assert.Equal(t, tt.errorType, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, adapter)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, adapter.Clear(ctx))

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte(`{"id":"abc"}`)

		require.NoError(t, adapter.Set(ctx, "forecast:last", value, time.Minute))

		retrieved, err := adapter.Get(ctx, "forecast:last")
		require.NoError(t, err)
		assert.Equal(t, value, retrieved)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "delete-key", []byte("v"), time.Minute))
		require.NoError(t, adapter.Delete(ctx, "delete-key"))

		_, err := adapter.Get(ctx, "delete-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, adapter.Set(ctx, "exists-key", []byte("v"), time.Minute))

		exists, err = adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("v"), 100*time.Millisecond))

		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ZeroTTLNeverExpires", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "sticky-key", []byte("v"), 0))

		mockRedis.FastForward(24 * time.Hour)

		retrieved, err := adapter.Get(ctx, "sticky-key")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), retrieved)
		assert.Equal(t, time.Duration(0), mockRedis.TTL("sticky-key"))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, adapter.Ping(ctx))
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{
			name: "GetEmptyKey",
			operation: func() error {
				_, err := adapter.Get(ctx, "")
				return err
			},
		},
		{
			name: "SetEmptyKey",
			operation: func() error {
				return adapter.Set(ctx, "", []byte("value"), time.Minute)
			},
		},
		{
			name: "SetNilValue",
			operation: func() error {
				return adapter.Set(ctx, "key", nil, time.Minute)
			},
		},
		{
			name: "SetNegativeTTL",
			operation: func() error {
				return adapter.Set(ctx, "key", []byte("value"), -time.Second)
			},
		},
		{
			name: "DeleteEmptyKey",
			operation: func() error {
				return adapter.Delete(ctx, "")
			},
		},
		{
			name: "ExistsEmptyKey",
			operation: func() error {
				_, err := adapter.Exists(ctx, "")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.operation()
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestRedisCacheProviderAdapter_ServerGone(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	mockRedis.Close()

	_, err = adapter.Get(context.Background(), "forecast:last")
	assert.Equal(t, errors.ErrorTypeExternalAPI, errors.TypeOf(err))
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisCacheProviderAdapter_KeyPrefix(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)
	redisConfig.KeyPrefix = "wf:"

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, mockRedis.Set("other-service:key", "keep"))
	require.NoError(t, adapter.Set(ctx, "forecast:last", []byte("v"), 0))

	assert.True(t, mockRedis.Exists("wf:forecast:last"))
	assert.False(t, mockRedis.Exists("forecast:last"))

	require.NoError(t, adapter.Clear(ctx))

	assert.False(t, mockRedis.Exists("wf:forecast:last"))
	assert.True(t, mockRedis.Exists("other-service:key"))

	_, err = adapter.Get(ctx, "forecast:last")
	assert.True(t, errors.IsNotFoundError(err))
}
