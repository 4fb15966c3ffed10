package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/jobmatch/internal/cache"
	"github.com/oggyb/jobmatch/internal/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestReceivedCount_MissSetHitInvalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)
	jobAdID := uuid.New()

	_, ok, err := c.GetReceivedCount(ctx, jobAdID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetReceivedCount(ctx, jobAdID, 3))
	assert.Equal(t, cache.CountTTL, mr.TTL(c.KeyForReceivedCount(jobAdID)))

	n, ok, err := c.GetReceivedCount(ctx, jobAdID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)

	require.NoError(t, c.InvalidateReceivedCount(ctx, jobAdID))
	_, ok, err = c.GetReceivedCount(ctx, jobAdID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReceivedCount_Corrupt(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)
	jobAdID := uuid.New()

	require.NoError(t, mr.Set(c.KeyForReceivedCount(jobAdID), "not-a-number"))

	_, ok, err := c.GetReceivedCount(ctx, jobAdID)
	assert.Error(t, err)
	assert.False(t, ok)
}
