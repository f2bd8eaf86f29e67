package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds application level configuration.
type Config struct {
	AppPort       string
	APIPrefix     string
	DBDriver      string
	DatabaseDSN   string
	JWTSecret     string
	TokenTTL      time.Duration
	RabbitMQURL   string
	RabbitMQQueue string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LogLevel      string
	LogFormat     string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=stockroom port=5432 sslmode=disable")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("RABBITMQ_QUEUE", "inventory_events")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads configuration from environment variables and, when configFile
// is not empty, from that file. Environment variables win.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	cfg := &Config{
		AppPort:       v.GetString("APP_PORT"),
		APIPrefix:     v.GetString("API_PREFIX"),
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		RabbitMQQueue: v.GetString("RABBITMQ_QUEUE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no usable default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return errors.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return errors.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return errors.Errorf("API_PREFIX must start with '/', got %q", c.APIPrefix)
	}
	return nil
}
