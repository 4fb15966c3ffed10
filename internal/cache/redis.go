package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oggyb/jobmatch/internal/config"
)

// CountTTL is how long a cached counter lives without being touched.
const CountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForReceivedCount is the key holding how many match requests a job ad
// has received from applications and not yet answered.
func (c *RedisCache) KeyForReceivedCount(jobAdID uuid.UUID) string {
	return fmt.Sprintf("matches:received:%s", jobAdID)
}

// GetReceivedCount returns the cached count. ok is false on a cache miss.
// A hit refreshes the TTL.
func (c *RedisCache) GetReceivedCount(ctx context.Context, jobAdID uuid.UUID) (count int64, ok bool, err error) {
	key := c.KeyForReceivedCount(jobAdID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	count, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	_ = c.Client.Expire(ctx, key, CountTTL).Err()
	return count, true, nil
}

func (c *RedisCache) SetReceivedCount(ctx context.Context, jobAdID uuid.UUID, count int64) error {
	return c.Client.Set(ctx, c.KeyForReceivedCount(jobAdID), count, CountTTL).Err()
}

// InvalidateReceivedCount drops the cached count so the next read goes to the DB.
func (c *RedisCache) InvalidateReceivedCount(ctx context.Context, jobAdID uuid.UUID) error {
	return c.Client.Del(ctx, c.KeyForReceivedCount(jobAdID)).Err()
}
