package config

import (
	"testing"
	"time"

	"workshop-genie/internal/service"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
		"WORKER_COUNT", "PASSWORD_MODE", "ADMIN_API_KEY", "SEED_WORKSHOPS", "LOG_LEVEL", "DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, service.PasswordBcrypt, cfg.PasswordMode)
	require.True(t, cfg.SeedWorkshops)
	require.Equal(t, log.INFO, cfg.LogLevel)
	require.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("PASSWORD_MODE", "plain")
	t.Setenv("ADMIN_API_KEY", "k")
	t.Setenv("SEED_WORKSHOPS", "false")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "postgres://x", cfg.DatabaseURL)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, time.Minute, cfg.CacheTTL)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, service.PasswordPlain, cfg.PasswordMode)
	require.Equal(t, "k", cfg.AdminAPIKey)
	require.False(t, cfg.SeedWorkshops)
	require.Equal(t, log.WARN, cfg.LogLevel)
}

func TestLoadDebugForcesLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "error")
	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, log.DEBUG, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		key, value, msg string
	}{
		"redis db":      {"REDIS_DB", "x", "invalid REDIS_DB"},
		"cache ttl":     {"CACHE_TTL", "soon", "invalid CACHE_TTL"},
		"worker count":  {"WORKER_COUNT", "0", "WORKER_COUNT must be positive, got 0"},
		"worker parse":  {"WORKER_COUNT", "two", "invalid WORKER_COUNT"},
		"password mode": {"PASSWORD_MODE", "md5", "PASSWORD_MODE"},
		"seed":          {"SEED_WORKSHOPS", "maybe", "invalid SEED_WORKSHOPS"},
		"debug":         {"DEBUG", "yes please", "invalid DEBUG"},
		"log level":     {"LOG_LEVEL", "loud", `invalid LOG_LEVEL "loud"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}
