package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketmood/feargreed/internal/marketdata"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, marketdata.DefaultEndpoint, cfg.APIURL)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.NotEmpty(t, cfg.SnapshotSchedule)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FEARGREED_API_URL", "http://localhost:9000/data")
	t.Setenv("GO_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/data", cfg.APIURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("GO_PORT", "not-a-number")
	t.Setenv("DEV_MODE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.False(t, cfg.DevMode)
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIURL: "http://x", DatabasePath: "./x.db"}
	assert.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{DatabasePath: "./x.db"}).Validate())
	assert.Error(t, (&Config{APIURL: "http://x"}).Validate())
	assert.Error(t, (&Config{APIURL: "http://x", DatabasePath: "./x.db", CacheTTL: -time.Second}).Validate())
}
