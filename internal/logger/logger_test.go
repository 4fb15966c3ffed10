package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/jobmatch/internal/config"
)

// capture initializes the global logger with c writing into a buffer,
// runs f and returns everything that was logged.
func capture(t *testing.T, c Config, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	c.Output = &buf
	Init(&c)
	t.Cleanup(func() { Init(&Config{Level: "info", Format: FormatText}) })

	f()
	return buf.String()
}

func TestLogger_TextFormat(t *testing.T) {
	out := capture(t, Config{Level: "debug", Format: FormatText, Component: "test"}, func() {
		Info("job ad created", "job_ad_id", "42")
	})

	assert.Contains(t, out, "job ad created")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "job_ad_id=42")
}

func TestLogger_JSONFormat(t *testing.T) {
	out := capture(t, Config{Level: "info", Format: FormatJSON, Component: "json_test"}, func() {
		Info("match accepted", "status", "ACCEPTED")
	})

	assert.Contains(t, out, `"msg":"match accepted"`)
	assert.Contains(t, out, `"component":"json_test"`)
	assert.Contains(t, out, `"status":"ACCEPTED"`)
}

func TestLogger_LevelFilter(t *testing.T) {
	out := capture(t, Config{Level: "error", Format: FormatText}, func() {
		Info("should not appear")
		Error("should appear")
	})

	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestLogger_WithAddsFields(t *testing.T) {
	out := capture(t, Config{Level: "debug", Format: FormatText}, func() {
		With("req_id", "123").Info("processing request")
	})

	assert.Contains(t, out, "req_id=123")
}

func TestLogger_InitFromConfig(t *testing.T) {
	appCfg := &config.Config{}
	appCfg.Log = config.LogConfig{Level: "debug", Format: "json", Component: "cfg_test"}

	InitFromConfig(appCfg)
	t.Cleanup(func() { Init(&Config{Level: "info", Format: FormatText}) })

	assert.True(t, L().Enabled(context.Background(), slog.LevelDebug))

	mu.RLock()
	defer mu.RUnlock()
	assert.Equal(t, "cfg_test", cfg.Component)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLevel("info"))
	assert.Equal(t, gormlogger.Warn, GormLevel(""))
	assert.Equal(t, gormlogger.Error, GormLevel("error"))
}
