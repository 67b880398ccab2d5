package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-at-least-32-chars!!")
	t.Setenv("SPOTIFY_CLIENT_ID", "client-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "client-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "https://api.spotify.com/v1", cfg.SpotifyAPIURL)
	assert.Equal(t, "https://accounts.spotify.com/api/token", cfg.SpotifyAccountsURL)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SPOTIFY_CLIENT_ID", "client-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "client-secret")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GO_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_BadPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		HTTPPort:  8080,
		JWTSecret: "test-secret-key-at-least-32-chars!!",
		CacheTTL:  time.Hour,
		LogLevel:  "info",
		LogFormat: "text",
	}
	assert.NoError(t, valid.Validate())

	shortSecret := *valid
	shortSecret.JWTSecret = "short"
	assert.Error(t, shortSecret.Validate())

	badPort := *valid
	badPort.HTTPPort = 0
	assert.Error(t, badPort.Validate())

	badLevel := *valid
	badLevel.LogLevel = "verbose"
	assert.Error(t, badLevel.Validate())
}
