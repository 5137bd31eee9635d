// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Default values.
const (
	DefaultPort            = "8080"
	DefaultQuotaBytes      = 5 * 1024 * 1024
	DefaultToastDurationMs = 5000
	DefaultConfigFile      = "todolist.toml"
)

type ServerConfig struct {
	Port                string `toml:"port"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
}

type StorageConfig struct {
	// Backend selects the session store: "memory" (default) or "redis".
	Backend string `toml:"backend"`

	// QuotaBytes caps the total payload the memory backend will hold;
	// zero disables the check.
	QuotaBytes int `toml:"quota_bytes"`

	// SessionTTLSeconds scopes stored values to a session; zero keeps them
	// for the process lifetime.
	SessionTTLSeconds int `toml:"session_ttl_seconds"`

	RedisAddr string `toml:"redis_addr"`
}

type ToastConfig struct {
	DefaultDurationMs int `toml:"default_duration_ms"`
}

type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Toast       ToastConfig   `toml:"toast"`
}

// Load builds the configuration from defaults, an optional TOML file and
// environment variable overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:                DefaultPort,
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
		},
		Storage: StorageConfig{
			Backend:    BackendMemory,
			QuotaBytes: DefaultQuotaBytes,
			RedisAddr:  "localhost:6379",
		},
		Toast: ToastConfig{
			DefaultDurationMs: DefaultToastDurationMs,
		},
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Environment = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}

	if v := os.Getenv("STORAGE_QUOTA_BYTES"); v != "" {
		if quota, err := strconv.Atoi(v); err == nil {
			cfg.Storage.QuotaBytes = quota
		}
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q (expected %q or %q)", cfg.Storage.Backend, BackendMemory, BackendRedis)
	}

	if cfg.Storage.Backend == BackendRedis && cfg.Storage.RedisAddr == "" {
		return fmt.Errorf("storage backend %q requires redis_addr", BackendRedis)
	}

	return nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Storage.SessionTTLSeconds) * time.Second
}

func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.Toast.DefaultDurationMs) * time.Millisecond
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}
