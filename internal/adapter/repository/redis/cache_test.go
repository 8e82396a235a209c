package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledgerengine/internal/usecase"
)

func TestCacheSetAndGet(t *testing.T) {
	client, _ := newTestRedisClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "config:set", []byte(`{"version":1}`), time.Minute))

	val, err := cache.Get(ctx, "config:set")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1}`, string(val))
}

func TestCacheMiss(t *testing.T) {
	client, _ := newTestRedisClient(t)
	cache := NewCache(client)

	_, err := cache.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCacheExpiresAndDeletes(t *testing.T) {
	client, mr := newTestRedisClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))
	assert.True(t, mr.Exists("ledger:cache:a"))

	mr.FastForward(2 * time.Minute)
	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "b"))
	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCacheServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	cache := NewCache(client)
	mr.Close()

	_, err := cache.Get(context.Background(), "a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrCacheMiss)
}
