package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"

	envPrefix = "BOOKMARKER"
)

type (
	Config struct {
		Host       string `mapstructure:"HOST"`
		Port       string `mapstructure:"PORT"`
		GRPCPort   string `mapstructure:"GRPC_PORT"`
		DBHost     string `mapstructure:"DB_HOST"`
		DBPort     string `mapstructure:"DB_PORT"`
		DBUser     string `mapstructure:"DB_USER"`
		DBPassword string `mapstructure:"DB_PASSWORD"`
		DBName     string `mapstructure:"DB_NAME"`
		DBSSLMode  string `mapstructure:"DB_SSL_MODE"`
		DBLogLevel string `mapstructure:"DB_LOG_LEVEL"`

		// JWTSecret signs and verifies access tokens. There is no default.
		JWTSecret string        `mapstructure:"JWT_SECRET"`
		TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

		LogLevel       string `mapstructure:"LOG_LEVEL"`
		LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
	}
)

var defaults = map[string]interface{}{
	"HOST":            "0.0.0.0",
	"PORT":            "1323",
	"GRPC_PORT":       "9000",
	"DB_HOST":         "0.0.0.0",
	"DB_PORT":         "5432",
	"DB_USER":         "user",
	"DB_PASSWORD":     "password",
	"DB_NAME":         "db",
	"DB_SSL_MODE":     sslModeDisable,
	"DB_LOG_LEVEL":    "warn",
	"JWT_SECRET":      "",
	"TOKEN_TTL":       "20m",
	"LOG_LEVEL":       "info",
	"LOG_DEVELOPMENT": false,
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c *Config) HTTPAddr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) GRPCAddr() string {
	return c.Host + ":" + c.GRPCPort
}

func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if cfg.TokenTTL <= 0 {
		return errors.Errorf("TOKEN_TTL must be positive: %s", cfg.TokenTTL)
	}
	if !oneOf(cfg.DBLogLevel, "silent", "error", "warn", "info") {
		return errors.Errorf("DB log level is invalid: %s", cfg.DBLogLevel)
	}
	if !oneOf(cfg.DBSSLMode, sslModeDisable, sslModeRequire) {
		return errors.Errorf("DB SSL mode is invalid: %s", cfg.DBSSLMode)
	}
	return nil
}

func oneOf(value string, valid ...string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
