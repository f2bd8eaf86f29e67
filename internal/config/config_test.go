package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockroom/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "inventory_events", cfg.RabbitMQQueue)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET: from-file\nAPP_PORT: \":9000\"\n"), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, ":9000", cfg.AppPort)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load(viper.New(), "")
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "x")
	t.Setenv("DB_DRIVER", "oracle")
	_, err = config.Load(viper.New(), "")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
