package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logging   LogConfig       `toml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	RefData   RefDataConfig   `toml:"refdata"`
	Generator GeneratorConfig `toml:"generator"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string   `envconfig:"PORT" toml:"port"`
	Host        string   `envconfig:"HOST" toml:"host"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" toml:"cors_origins"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" toml:"enabled"`
}

// RefDataConfig selects the reference database.
type RefDataConfig struct {
	Path string `envconfig:"REFDATA_PATH" toml:"path"`
	Seed bool   `envconfig:"REFDATA_SEED" toml:"seed"`
}

// GeneratorConfig holds synthetic number generation settings.
type GeneratorConfig struct {
	MaxBatch       int    `envconfig:"GEN_MAX_BATCH" toml:"max_batch"`
	FingerprintKey string `envconfig:"FINGERPRINT_KEY" toml:"fingerprint_key"`
}

// Load loads configuration from environment variables over the defaults.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile layers configuration: defaults, then the TOML file at path (if
// path is not empty), then environment variables.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("invalid config: server port is empty")
	}
	if c.RefData.Path == "" {
		return fmt.Errorf("invalid config: refdata path is empty")
	}
	if c.Generator.MaxBatch < 1 {
		return fmt.Errorf("invalid config: generator max batch must be positive, got %d", c.Generator.MaxBatch)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond < 1 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("invalid config: rate limit needs positive rps and burst")
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			Host:        "0.0.0.0",
			CORSOrigins: []string{"*"},
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		RefData: RefDataConfig{
			Path: ":memory:",
			Seed: true,
		},
		Generator: GeneratorConfig{
			MaxBatch: 100,
		},
	}
}
