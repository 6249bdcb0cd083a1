package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_BASE_URL", "http://backend.local")
	t.Setenv("API_KEY", "key")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "quote")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "quotes")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.RedisTTL)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, int64(0), cfg.TelegramChannelID)
	assert.Equal(t, 10*time.Minute, cfg.SubmitWindow)
	assert.Equal(t, 90*time.Second, cfg.SubmitTimeout)
	assert.Equal(t, 2*time.Minute, cfg.SubmitLockTTL)
	assert.Equal(t, "host=localhost port=5432 user=quote password=secret dbname=quotes sslmode=disable", cfg.Database.DSN())
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadTelegramNeedsToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHANNEL_ID", "-1001234567890")
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), cfg.TelegramChannelID)
}

func TestLoadSubmitTimeoutWithinLockTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("SUBMIT_TIMEOUT", "3m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUBMIT_LOCK_TTL")

	t.Setenv("SUBMIT_LOCK_TTL", "5m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, cfg.SubmitTimeout)
	assert.Equal(t, 5*time.Minute, cfg.SubmitLockTTL)
}

func TestLoadDatabaseOnly(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "quote")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "quotes")
	t.Setenv("DB_PORT", "6432")

	db, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", db.Host)
	assert.Equal(t, 6432, db.Port)
	assert.Equal(t, "disable", db.SSLMode)
}
