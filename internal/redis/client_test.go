package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		client, err := redis.NewClient("", nil)
		assert.Nil(t, client)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("reaches the server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(mr.Addr(), &redis.Options{DB: 0, MaxRetries: 1})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, redis.Ping(context.Background(), client, time.Second))
		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		mr.CheckGet(t, "k", "v")
	})

	t.Run("ping reports an unavailable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := redis.NewClient(mr.Addr(), nil)
		require.NoError(t, err)
		mr.Close()

		err = redis.Ping(context.Background(), client, time.Second)
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("missing keys return Nil", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := redis.NewClient(mr.Addr(), nil)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "missing").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
