package dictcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	dictapimodels "it-requests-backend/models/api/dict"
)

func newTestCache(t *testing.T) Provider {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &impl{client: client, ttl: time.Minute}
}

func TestCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.GetOptions(ctx, "dict:departments")
	require.False(t, ok)

	options := []dictapimodels.Option{
		{ID: 1, Name: "IT Department"},
		{ID: 2, Name: "Accounting"},
	}
	cache.SetOptions(ctx, "dict:departments", options)

	got, ok := cache.GetOptions(ctx, "dict:departments")
	require.True(t, ok)
	require.Equal(t, options, got)
}

func TestCacheInvalidate(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.SetOptions(ctx, "dict:topics", []dictapimodels.Option{{ID: 1, Name: "Hardware"}})
	cache.Invalidate(ctx, "dict:topics")

	_, ok := cache.GetOptions(ctx, "dict:topics")
	require.False(t, ok)
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	cache := disabled{}
	ctx := context.Background()
	cache.SetOptions(ctx, "dict:any", []dictapimodels.Option{{ID: 1, Name: "x"}})
	_, ok := cache.GetOptions(ctx, "dict:any")
	require.False(t, ok)
}
