package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/jobmatch/internal/config"
	"github.com/oggyb/jobmatch/internal/logger"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	logger.Init(&logger.Config{Level: "error"})

	cfg := config.New()
	cfg.DB.Driver = "oracle"

	err := run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to init db")
	assert.Contains(t, err.Error(), `unsupported db driver "oracle"`)
}
