// Package config loads runtime settings for the product service.
//
// Settings start from built-in defaults, are optionally read from a YAML
// file and are finally overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort   = 3000
	DefaultAPIKey = "secret-key1234"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Store   StoreConfig   `yaml:"store"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port              int `yaml:"port"`
	ReadHeaderTimeout int `yaml:"read_header_timeout"`
	ShutdownTimeout   int `yaml:"shutdown_timeout"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

type StoreConfig struct {
	Seed bool `yaml:"seed"`
}

// Load builds a Config. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: 5,
			ShutdownTimeout:   10,
		},
		Auth:    AuthConfig{APIKey: DefaultAPIKey},
		Logging: LoggingConfig{Level: "info"},
		Store:   StoreConfig{Seed: true},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = n
	}

	// Auth
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("SEED_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_DATA: %w", err)
		}
		cfg.Store.Seed = b
	}

	// Metrics
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = b
	}
	if v := os.Getenv("METRICS_TOKEN"); v != "" {
		cfg.Metrics.Token = v
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.Server.ShutdownTimeout = n
	}

	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("server.read_header_timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func (c *Config) GetReadHeaderTimeout() time.Duration {
	return time.Duration(c.Server.ReadHeaderTimeout) * time.Second
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}
