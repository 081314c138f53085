package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// configFile is the name of the user configuration file, looked up
	// in the working directory.
	configFile = ".empconfig.yaml"

	// Default configuration values
	DefaultDataFile = "employees.txt"
	DefaultColor    = "auto"
)

// Config represents user configuration from .empconfig.yaml.
// This file is user-managed and never written by emp.
type Config struct {
	// DataFile is the roster file path, relative to the working
	// directory unless absolute.
	DataFile string `yaml:"data_file"`

	// Color controls colored output: "auto", "always", or "never".
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Color:    DefaultColor,
	}
}

// LoadConfig loads .empconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color setting %q in %s (expected auto, always, or never)", cfg.Color, configFile)
	}

	return cfg, nil
}
