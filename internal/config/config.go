// Package config defines the single configuration shape consumed by the
// pipeline. Host surfaces (CLI flags, the TOML file) translate into this one
// structure at the boundary; nothing downstream branches on where a value
// came from.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level application configuration.
type Config struct {
	Source SourceConfig `toml:"source"`
	Output OutputConfig `toml:"output"`
	Enrich EnrichConfig `toml:"enrich"`
}

// SourceConfig selects which files to document.
type SourceConfig struct {
	Dir         string `toml:"dir"`
	ChangedOnly bool   `toml:"changed_only"`
}

// OutputConfig controls where and how artifacts are produced.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	Concurrency int    `toml:"concurrency"`
}

// EnrichConfig holds settings for delegated rendering.
type EnrichConfig struct {
	Enabled           bool    `toml:"enabled"`
	Endpoint          string  `toml:"endpoint"`
	Model             string  `toml:"model"`
	APIKeySource      string  `toml:"api_key_source"`
	APIKey            string  `toml:"api_key"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Dir: "src/main/java",
		},
		Output: OutputConfig{
			Dir:         "docs",
			Concurrency: 1,
		},
		Enrich: EnrichConfig{
			Enabled:      true,
			Endpoint:     "http://localhost:8080/v1/chat/completions",
			Model:        "gpt-4",
			APIKeySource: "env",
		},
	}
}

// Load reads the TOML config at path over the defaults. A missing file is
// not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
