package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StorageList  = "list"
	StorageArena = "arena"

	DefaultPath = "chainwalk.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds chainwalk configuration.
type Config struct {
	// Values the chain is built from, head first
	Seed []int64 `yaml:"seed"`

	// Storage backend: list or arena
	Storage string `yaml:"storage"`

	// Id assigned to the first node
	InitialID int64 `yaml:"initial_id"`

	// Check link invariants before walking
	Verify bool `yaml:"verify"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the three-node chain 37, 38, 39 on the list backend.
func DefaultConfig() *Config {
	return &Config{
		Seed:      []int64{37, 38, 39},
		Storage:   StorageList,
		InitialID: 1,

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults if config file doesn't exist
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CHAINWALK_STORAGE"); v != "" {
		c.Storage = strings.ToLower(v)
	}
	if v := os.Getenv("CHAINWALK_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageList, StorageArena:
	default:
		return fmt.Errorf("%w: unknown storage %q (want %q or %q)", ErrInvalidConfig, c.Storage, StorageList, StorageArena)
	}
	if len(c.Seed) == 0 {
		return fmt.Errorf("%w: seed is empty", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
