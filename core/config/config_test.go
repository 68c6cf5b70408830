package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBaseURL)
	assert.Equal(t, 30, cfg.Telegram.TimeoutSeconds)
	assert.Equal(t, 20, cfg.Limiter.MaxConcurrent)
	assert.Equal(t, 2.0, cfg.Limiter.IntervalSeconds)
	assert.Equal(t, "snapshot", cfg.Snapshot.Prefix)
	assert.Equal(t, 4, cfg.Snapshot.Retention)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TELEGRAM_PROXY", "socks5://localhost:1080")
	t.Setenv("LIMITER_MAX_CONCURRENT", "5")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "socks5://localhost:1080", cfg.Telegram.Proxy)
	assert.Equal(t, 5, cfg.Limiter.MaxConcurrent)
	assert.Equal(t, "json", cfg.Log.Format)
}
