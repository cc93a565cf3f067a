// Package config loads leavectl settings from environment variables and an
// optional config file, env taking priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

// Config groups the CLI configuration.
type Config struct {
	App AppConfig
	API APIConfig
	Log LogConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env string // development, staging, production
}

// APIConfig configures the backend client.
type APIConfig struct {
	BaseURL         string
	Mode            string // cookie or bearer
	CredentialsPath string
	Timeout         time.Duration
}

// LogConfig configures logging.
type LogConfig struct {
	Level string
}

// CredentialsMode maps the configured string onto the client mode. The CLI
// defaults to bearer since cookies do not survive between invocations.
func (c APIConfig) CredentialsMode() (leavemarker.CredentialsMode, error) {
	switch c.Mode {
	case "bearer", "":
		return leavemarker.CredentialsBearer, nil
	case "cookie":
		return leavemarker.CredentialsCookie, nil
	default:
		return 0, fmt.Errorf("invalid credentials mode %q (want cookie or bearer)", c.Mode)
	}
}

// Load reads configuration from env vars (LEAVEMARKER_*) and optionally
// from ~/.leavemarker/config.yaml. Env vars win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".leavemarker"))
	}
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetEnvPrefix("LEAVEMARKER")
	v.AutomaticEnv()

	v.SetDefault("app.env", "production")
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.mode", "bearer")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("log.level", "warn")

	credPath := v.GetString("api.credentials_path")
	if credPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		credPath = filepath.Join(home, ".leavemarker", "credentials.json")
	}

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("app.env"),
		},
		API: APIConfig{
			BaseURL:         v.GetString("api.base_url"),
			Mode:            v.GetString("api.mode"),
			CredentialsPath: credPath,
			Timeout:         v.GetDuration("api.timeout"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}
	if _, err := cfg.API.CredentialsMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}
