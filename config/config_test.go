package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "profileapi")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "profileapi")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_POOL_SIZE", "20")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TOKEN_DURATION", "90m")
	t.Setenv("MIGRATIONS_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 20, cfg.DB.MaxSize)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenDuration)
	assert.Empty(t, cfg.MigrationsPath)
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	// Only one of the four required variables is set, and two optional ones
	// carry unparseable values: every problem must be reported at once.
	t.Setenv("DB_USER", "profileapi")
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "DB_PASSWORD")
	assert.Contains(t, msg, "DB_NAME")
	assert.Contains(t, msg, "JWT_SECRET")
	assert.Contains(t, msg, "DB_PORT")
	assert.Contains(t, msg, "JWT_TOKEN_DURATION")
}

func TestLoadConfigClampsPoolSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "2")

	// Out-of-range pool sizes are reported as configuration errors rather
	// than silently adjusted.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}
