package utils

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a queue: debug logging and the allocation
// budget its allocator enforces. Zero limits mean unlimited.
type Config struct {
	Debug     bool  `yaml:"debug" json:"debug"`
	MaxBytes  int64 `yaml:"max_bytes" json:"max_bytes"`
	MaxAllocs int   `yaml:"max_allocs" json:"max_allocs"`
}

// LoadConfig reads and parses a YAML (or JSON) config file. A missing file
// yields the default config.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a config document and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(config)
	return config, nil
}

// DefaultConfig returns default config values
func DefaultConfig() *Config {
	return &Config{
		Debug:     false,
		MaxBytes:  0,
		MaxAllocs: 0,
	}
}

// applyDefaults clamps negative limits to unlimited
func applyDefaults(config *Config) {
	if config.MaxBytes < 0 {
		config.MaxBytes = 0
	}
	if config.MaxAllocs < 0 {
		config.MaxAllocs = 0
	}
}
