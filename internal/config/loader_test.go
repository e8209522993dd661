package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, home, content string) string {
	t.Helper()
	configDir := filepath.Join(home, ".config", "themekit")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	path := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := DefaultConfig()

	if got.Theme != "invariant" {
		t.Fatalf("Theme = %q, want invariant", got.Theme)
	}
	if got.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", got.LogLevel)
	}
	if want := filepath.Join(home, ".config", "themekit", "themes"); got.UserThemesDir != want {
		t.Fatalf("UserThemesDir = %q, want %q", got.UserThemesDir, want)
	}
	if filepath.Base(got.AppThemesDir) != "Themes" {
		t.Fatalf("AppThemesDir = %q, want a Themes directory", got.AppThemesDir)
	}
	if got.Portable() {
		t.Fatal("default config should not be portable")
	}
}

func TestLoadReturnsDefaultsWhenConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got := Load()
	want := DefaultConfig()

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %#v, want defaults %#v", got, want)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, "app_themes_dir: /opt/app/Themes\nuser_themes_dir: ~/themes\ntheme: dark\nuser_theme: true\nvariants: [HighContrast, HiDpi]\nlog_level: debug\n")

	got := Load()

	if got.AppThemesDir != "/opt/app/Themes" {
		t.Fatalf("AppThemesDir = %q", got.AppThemesDir)
	}
	if want := filepath.Join(home, "themes"); got.UserThemesDir != want {
		t.Fatalf("UserThemesDir = %q, want %q", got.UserThemesDir, want)
	}
	if got.Theme != "dark" || !got.UserTheme {
		t.Fatalf("Theme = %q user=%v, want dark user=true", got.Theme, got.UserTheme)
	}
	if !reflect.DeepEqual(got.Variants, []string{"HighContrast", "HiDpi"}) {
		t.Fatalf("Variants = %v", got.Variants)
	}
	if got.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", got.LogLevel)
	}
}

func TestLoadMergesPartialConfigWithDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: light\n")

	got := Load()
	want := DefaultConfig()
	want.Theme = "light"

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %#v, want %#v", got, want)
	}
}

func TestLoadInvalidYAMLKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "theme: [\n")

	got := Load()
	want := DefaultConfig()

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %#v, want defaults %#v", got, want)
	}
}

func TestLoadFileReportsErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("variants: {\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parsing error for invalid yaml")
	}
}

func TestNormalizeDetectsPortableInstall(t *testing.T) {
	cfg := Config{AppThemesDir: "/opt/App/Themes", UserThemesDir: "/opt/app/themes/"}
	cfg.Normalize()

	if !cfg.Portable() {
		t.Fatalf("UserThemesDir = %q, want cleared for portable install", cfg.UserThemesDir)
	}
}
