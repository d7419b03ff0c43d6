package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls corpus splitting for the postag command.
type Config struct {
	// Split is the fraction of sentences used for training.
	Split float64 `yaml:"split"`

	// Seed drives the deterministic train/test partition.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used when no config
// file is given.
func DefaultConfig() Config {
	return Config{
		Split: 0.8,
		Seed:  1,
	}
}

// LoadConfig reads a yaml config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Split <= 0 || cfg.Split >= 1 {
		return cfg, fmt.Errorf("config %s: split must be in (0, 1), got %v", path, cfg.Split)
	}
	return cfg, nil
}
