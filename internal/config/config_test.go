package config_test

import (
	"testing"

	"lensrent/internal/config"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("POSTGRES_DB", "lensrent")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("JWT_SECRET", "test_secret")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("FE_URL", "http://localhost:5173")
}

func TestLoad_OK(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, "http://localhost:5173", cfg.FEURL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_BadPostgresPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

// COOKIE_SECUREは省略可。未設定・不正値はtrueに倒れる。
func TestLoad_CookieSecure(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.True(t, cfg.CookieSecure)

	t.Setenv("COOKIE_SECURE", "false")
	cfg, err = config.Load()
	assert.NoError(t, err)
	assert.False(t, cfg.CookieSecure)

	t.Setenv("COOKIE_SECURE", "garbage")
	cfg, err = config.Load()
	assert.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}
