package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RestDay != "sunday" {
		t.Errorf("RestDay = %q, want default sunday", cfg.RestDay)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty default", cfg.DBPath)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/tekkie-test.db"
default_profile = "Maya"
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DBPath != "/tmp/tekkie-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultProfile != "Maya" {
		t.Errorf("DefaultProfile = %q", cfg.DefaultProfile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	// Unset keys keep their defaults.
	if cfg.RestDay != "sunday" {
		t.Errorf("RestDay = %q, want default preserved", cfg.RestDay)
	}
}

func TestLoadFromRejectsMangledFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted invalid TOML")
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/custom/tekkie.toml")
	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if p != "/custom/tekkie.toml" {
		t.Errorf("Path = %q, want env override", p)
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if p != filepath.Join("/xdg", "tekkie", "config.toml") {
		t.Errorf("Path = %q", p)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.WarnLevel, false},
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"shouting", log.WarnLevel, true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.LogLevel = tt.in
		got, err := cfg.ParseLogLevel()
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
