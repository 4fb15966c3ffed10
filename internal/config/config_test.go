package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MySQLDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")

	cfg := New()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "root:root@tcp(db.internal:3306)/jobmatch?parseTime=true&charset=utf8mb4&loc=UTC", cfg.DB.DSN)
	assert.Equal(t, "50051", cfg.GRPC.Port)
}

func TestNew_PostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "jobs")
	t.Setenv("DB_PORT", "")

	cfg := New()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "host=pg user=app password=secret dbname=jobs port=5432 sslmode=disable TimeZone=UTC", cfg.DB.DSN)
}

func TestNew_ExplicitDSNWins(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file::memory:")

	cfg := New()

	assert.Equal(t, "file::memory:", cfg.DB.DSN)
}

func TestNew_LogAndRedis(t *testing.T) {
	t.Setenv("LOG_SOURCE", "yes")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_COMPONENT", "")

	cfg := New()

	assert.True(t, cfg.Log.Source)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "jobmatch", cfg.Log.Component)
}
