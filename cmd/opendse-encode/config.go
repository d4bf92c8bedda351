// File: config.go
// Role: Persisted tool configuration: a small YAML document for namespace
//       URI, pretty-print width, and log level.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is opendse-encode's persisted configuration.
type Config struct {
	Namespace   string `yaml:"namespace"`
	PrettyWidth int    `yaml:"prettyWidth"`
	LogLevel    string `yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when no --config flag is
// given.
func DefaultConfig() *Config {
	return &Config{
		Namespace:   "opendse.sf.net",
		PrettyWidth: 2,
		LogLevel:    "info",
	}
}

// LoadConfig reads and parses a YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
