package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName         = "themekit"
	themesSubdir    = "Themes"
	userThemesDir   = "themes"
	defaultLogLevel = "warn"
)

// Config holds the application configuration.
type Config struct {
	// AppThemesDir holds the shipped themes, including the invariant one.
	AppThemesDir string `yaml:"app_themes_dir"`
	// UserThemesDir holds user-defined themes. Empty means portable mode.
	UserThemesDir string   `yaml:"user_themes_dir"`
	Theme         string   `yaml:"theme"`
	UserTheme     bool     `yaml:"user_theme"`
	Variants      []string `yaml:"variants"`
	LogLevel      string   `yaml:"log_level"`
	StatePath     string   `yaml:"state_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	cfg := Config{
		AppThemesDir: themesSubdir,
		Theme:        "invariant",
		LogLevel:     defaultLogLevel,
	}

	if exe, err := os.Executable(); err == nil {
		cfg.AppThemesDir = filepath.Join(filepath.Dir(exe), themesSubdir)
	}
	if dir, err := configDir(); err == nil {
		cfg.UserThemesDir = filepath.Join(dir, userThemesDir)
		cfg.StatePath = filepath.Join(dir, "state.db")
	}
	return cfg
}

// Normalize expands ~ in paths and clears the user themes directory when it
// is the application directory, as in portable installs.
func (c *Config) Normalize() {
	c.AppThemesDir = expandHome(c.AppThemesDir)
	c.UserThemesDir = expandHome(c.UserThemesDir)
	c.StatePath = expandHome(c.StatePath)

	if c.UserThemesDir != "" && strings.EqualFold(filepath.Clean(c.UserThemesDir), filepath.Clean(c.AppThemesDir)) {
		c.UserThemesDir = ""
	}
}

// Portable reports whether there is no separate user themes directory.
func (c Config) Portable() bool {
	return c.UserThemesDir == ""
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
