package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Stub    StubConfig    `mapstructure:"stub"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// APIConfig holds settings for the reservation API the client talks to
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds the persisted-session settings
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// StubConfig holds settings for the local development API server
type StubConfig struct {
	Port           int           `mapstructure:"port"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// .env is optional; env vars alone are fine
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "railway-reservation")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 15*time.Second)

	v.SetDefault("session.path", defaultSessionPath())

	v.SetDefault("stub.port", 8000)
	v.SetDefault("stub.jwt_secret", "dev-only-secret")
	v.SetDefault("stub.access_token_ttl", 24*time.Hour)
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	cfg.App.Name = v.GetString("app.name")
	cfg.App.LogLevel = v.GetString("app.log_level")

	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.Timeout = v.GetDuration("api.timeout")

	cfg.Session.Path = v.GetString("session.path")

	cfg.Stub.Port = v.GetInt("stub.port")
	cfg.Stub.JWTSecret = v.GetString("stub.jwt_secret")
	cfg.Stub.AccessTokenTTL = v.GetDuration("stub.access_token_ttl")

	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.Session.Path == "" {
		return fmt.Errorf("session.path is required")
	}
	if c.Stub.Port <= 0 || c.Stub.Port > 65535 {
		return fmt.Errorf("stub.port must be a valid port number")
	}
	return nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".railway-session.json")
	}
	return filepath.Join(dir, "railway-reservation", "session.json")
}
