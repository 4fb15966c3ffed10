// Package testutil wires in-memory infrastructure for package tests:
// a private sqlite database per test, a miniredis instance and an AppContext
// whose logger discards output.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/jobmatch/internal/app"
	"github.com/oggyb/jobmatch/internal/cache"
	"github.com/oggyb/jobmatch/internal/config"
	"github.com/oggyb/jobmatch/internal/db"
)

// NewDB opens a migrated in-memory sqlite database private to t.
// The pool is capped at one connection so the memory database lives as long
// as the test and writes are serialized.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(sqlite.Open(dsn), gormlogger.Discard)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// NewCache starts a miniredis server and returns a cache bound to it.
func NewCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
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

// NewAppContext bundles a fresh database, cache and a silent logger.
func NewAppContext(t *testing.T) (*app.AppContext, *miniredis.Miniredis) {
	t.Helper()

	gdb := NewDB(t)
	redisCache, mr := NewCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.New(gdb, redisCache, logger), mr
}
