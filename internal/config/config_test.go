package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "sar:view-events", cfg.ViewEventsChannel)
	assert.True(t, cfg.SeedScenario)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEED_SCENARIO", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.False(t, cfg.SeedScenario)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Переменная, которой нет в окружении, должна прийти из файла
	t.Setenv("VIEW_EVENTS_CHANNEL", "")
	require.NoError(t, os.Unsetenv("VIEW_EVENTS_CHANNEL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("VIEW_EVENTS_CHANNEL=ops:camera\n"), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "ops:camera", cfg.ViewEventsChannel)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-an-int")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadConfig_NonPositiveShutdown(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "0s")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}
