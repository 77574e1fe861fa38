package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/pkg/errors"
)

func TestMemoryCacheProvider_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	require.NoError(t, cache.Set(ctx, "forecast:last", []byte(`{"a":1}`), time.Hour))

	got, err := cache.Get(ctx, "forecast:last")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	exists, err := cache.Exists(ctx, "forecast:last")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCacheProvider_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", []byte("y"), 0))

	now = now.Add(2 * time.Minute)

	_, err := cache.Get(ctx, "short")
	assert.True(t, errors.IsNotFoundError(err))

	got, err := cache.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), got)

	exists, err := cache.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheProvider_SetReplacesSlot(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	require.NoError(t, cache.Set(ctx, "k", []byte("first"), 0))
	require.NoError(t, cache.Set(ctx, "k", []byte("second"), 0))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestMemoryCacheProvider_Validation(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	_, err := cache.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "", []byte("x"), 0)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, 0)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("x"), -time.Second)))
	assert.True(t, errors.IsValidationError(cache.Delete(ctx, "")))
	_, err = cache.Exists(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestMemoryCacheProvider_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Get(ctx, "a")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Get(ctx, "b")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMemoryCacheProvider_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	value := []byte("abc")
	require.NoError(t, cache.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
