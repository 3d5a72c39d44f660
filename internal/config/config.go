// Package config loads bot/driver configuration for cmd/demobot from
// YAML, using gopkg.in/yaml.v3 for serialization.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LogLevel holds one of the lowercase level names internal/logging's
// ParseLevel accepts, so config files stay readable without importing
// the logging package here.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config is the top-level shape of a bot configuration file: the driver
// token, a placeholder DSN for whatever KVStore backs persistent chat
// data, and the desired log verbosity.
type Config struct {
	DriverToken string   `yaml:"driverToken"`
	KVStoreDSN  string   `yaml:"kvStoreDSN"`
	LogLevel    LogLevel `yaml:"logLevel"`
	TreeFile    string   `yaml:"treeFile"`
}

// Default returns a Config usable without any file on disk, for local
// demos against the console driver and the in-memory KV store.
func Default() Config {
	return Config{
		KVStoreDSN: "memory://",
		LogLevel:   LogLevelInfo,
	}
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating its parent directory if
// needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate rejects a Config with an unrecognized log level; everything
// else is optional (a blank KV DSN and driver token are legitimate for
// local, unauthenticated demos).
func (c Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("config: unrecognized log level %q", c.LogLevel)
	}
}
