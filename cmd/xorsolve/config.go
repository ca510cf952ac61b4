// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/xorsolve/minweight"
	"gopkg.in/yaml.v3"
)

// Config is the file-level configuration of the CLI. Flags override it.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig controls the coset search.
type SearchConfig struct {
	ExhaustiveLimit int    `yaml:"exhaustive_limit"`
	Strategy        string `yaml:"strategy"`
}

// BatchConfig controls parallelism across instances.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	// Textfile, if set, receives the Prometheus text exposition after a run.
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{ExhaustiveLimit: minweight.DefaultExhaustiveLimit, Strategy: "auto"},
		Batch:  BatchConfig{Workers: 1},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Search.ExhaustiveLimit < 0 || c.Search.ExhaustiveLimit > minweight.MaxFreeVariables {
		return fmt.Errorf("search.exhaustive_limit=%d out of [0,%d]", c.Search.ExhaustiveLimit, minweight.MaxFreeVariables)
	}
	if _, err := minweight.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("search.strategy: %w", err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers=%d must be >= 1", c.Batch.Workers)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format=%q must be text or json", c.Log.Format)
	}
	return nil
}
