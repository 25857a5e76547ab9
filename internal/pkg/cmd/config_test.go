package cmd_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/env"
)

func TestParseConfig_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "HTTP_ADDRESS", "CORS_DEFAULT_ORIGIN", "LOGIN_RATE_LIMIT", "LOGIN_RATE_BURST")
	t.Setenv("JWT_SECRET", "secret")

	config, err := cmd.ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, cmd.EnvironmentDevelopment, config.Environment)
	assert.False(t, config.IsProduction())
	assert.Equal(t, ":8080", config.HTTPAddress)
	assert.Equal(t, "secret", config.JWTSecret)
	assert.Equal(t, "http://localhost:5173", config.CORSDefaultOrigin)
	assert.Equal(t, rate.Limit(1), config.LoginRateLimit)
	assert.Equal(t, 5, config.LoginRateBurst)
}

func TestParseConfig_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("LOGIN_RATE_LIMIT", "0.5")
	t.Setenv("LOGIN_RATE_BURST", "3")

	config, err := cmd.ParseConfig()
	require.NoError(t, err)

	assert.True(t, config.IsProduction())
	assert.Equal(t, ":9000", config.HTTPAddress)
	assert.Equal(t, rate.Limit(0.5), config.LoginRateLimit)
	assert.Equal(t, 3, config.LoginRateBurst)
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		unsetEnv(t, "JWT_SECRET")
		_, err := cmd.ParseConfig()
		assert.ErrorIs(t, err, env.ErrNotFound)
	})
	t.Run("empty secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := cmd.ParseConfig()
		assert.ErrorIs(t, err, cmd.ErrInvalidConfig)
	})
	t.Run("unknown environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("APP_ENV", "staging")
		_, err := cmd.ParseConfig()
		assert.ErrorIs(t, err, cmd.ErrInvalidConfig)
	})
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
