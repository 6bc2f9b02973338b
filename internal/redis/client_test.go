package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-pantheon/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClientFromURL("", nil)
	assert.Error(t, err)

	_, err = redis.NewClientFromURL("http://not-redis", nil)
	assert.Error(t, err)
}

func TestNewClientFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClientFromURL("redis://"+mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Check(context.Background(), client, time.Second))

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestCheckFailsWhenServerIsGone(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	mr.Close()
	assert.Error(t, redis.Check(context.Background(), client, time.Second))
}
