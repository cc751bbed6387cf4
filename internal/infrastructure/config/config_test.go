package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ":8000", cfg.Server.HTTPPort)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestNewConfig_EnvOverride(t *testing.T) {
	t.Setenv("TODO_HTTP_PORT", ":18000")
	t.Setenv("TODO_API_BASE_URL", "http://127.0.0.1:18000")
	t.Setenv("TODO_MCP_TIMEOUT", "5s")

	cfg := NewConfig()

	assert.Equal(t, ":18000", cfg.Server.HTTPPort)
	assert.Equal(t, "http://127.0.0.1:18000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestNewConfig_TimeoutAsSeconds(t *testing.T) {
	t.Setenv("TODO_MCP_TIMEOUT", "10")

	cfg := NewConfig()
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestNewConfig_TimeoutInvalid(t *testing.T) {
	t.Setenv("TODO_MCP_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestDatabaseConfig_DBPath(t *testing.T) {
	t.Run("显式配置优先", func(t *testing.T) {
		c := &DatabaseConfig{Path: "/tmp/custom.db"}
		path, err := c.DBPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.db", path)
	})

	t.Run("默认路径位于用户目录", func(t *testing.T) {
		c := &DatabaseConfig{}
		path, err := c.DBPath()
		require.NoError(t, err)
		assert.Equal(t, "todohub.db", filepath.Base(path))
		assert.Contains(t, path, ".todohub")
	})
}
