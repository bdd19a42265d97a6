// Package config holds the record-shape configuration for solution logs.
// The legacy tooling hard-coded a 5-component cost vector and an
// underscore key delimiter as positional assumptions; here they are an
// explicit, validated configuration that every codec consumer receives.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the single source of truth for the on-disk record shape.
type Config struct {
	// Delimiter joins solution vector elements into a key string.
	Delimiter string `yaml:"delimiter"`

	// CostComponents is the number of user-cost components per record.
	// Every record carries exactly this many; some consumers read fewer.
	CostComponents int `yaml:"cost_components"`

	// Precision is the number of fractional digits written for floats.
	Precision int `yaml:"precision"`
}

// Default returns the record shape used by the legacy search process.
func Default() *Config {
	return &Config{
		Delimiter:      "_",
		CostComponents: 5,
		Precision:      15,
	}
}

// Load reads a YAML config file, filling unset fields with defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the record shape is usable.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if c.CostComponents < 1 {
		return fmt.Errorf("cost_components must be at least 1, got %d", c.CostComponents)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision must be in [0, 17], got %d", c.Precision)
	}
	return nil
}
