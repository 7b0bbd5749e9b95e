package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "app.db", cfg.SQLite.Path)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, DevJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Zero(t, cfg.Auth.RevocationSweepInterval())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "1")
	t.Setenv("AUTH_REVOCATION_SWEEP_INTERVAL_SECONDS", "60")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, time.Minute, cfg.Auth.RevocationSweepInterval())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidate(t *testing.T) {
	base := Config{
		App:  AppConfig{Env: "production"},
		Auth: AuthConfig{JWTSecret: "prod-secret", AccessTokenTTLMinutes: 5},
	}
	require.NoError(t, base.Validate())

	devSecret := base
	devSecret.Auth.JWTSecret = DevJWTSecret
	assert.Error(t, devSecret.Validate())

	noSecret := base
	noSecret.Auth.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	badTTL := base
	badTTL.Auth.AccessTokenTTLMinutes = 0
	assert.Error(t, badTTL.Validate())
}

func TestGetEnvHelpersFallBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	t.Setenv("SOME_BOOL", "maybe")

	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	assert.True(t, getEnvAsBool("SOME_BOOL", true))
	assert.Equal(t, "x", getEnv("UNSET_KEY_FOR_TEST", "x"))
}
