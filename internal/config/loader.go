package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from ~/.config/themekit/config.yaml, falling back
// to defaults when the file is missing or unreadable.
func Load() Config {
	cfg := DefaultConfig()

	dir, err := configDir()
	if err != nil {
		cfg.Normalize()
		return cfg
	}

	loaded, err := LoadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		cfg.Normalize()
		return cfg
	}
	return loaded
}

// LoadFile loads configuration from path on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	parsed := cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	parsed.Normalize()
	return parsed, nil
}
