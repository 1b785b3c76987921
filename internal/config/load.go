package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Questions.Path != "" && !filepath.IsAbs(cfg.Questions.Path) {
		cfg.Questions.Path = filepath.Join(filepath.Dir(path), cfg.Questions.Path)
	}
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
