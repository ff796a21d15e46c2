// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TEKKIE_CONFIG"

// Config holds user-adjustable settings read from config.toml.
type Config struct {
	// DBPath overrides where the progress database lives. Empty means
	// the default data directory.
	DBPath string `toml:"db_path"`

	// DefaultProfile is a profile ID or name selected at startup when
	// no active profile is stored.
	DefaultProfile string `toml:"default_profile"`

	// RestDay names the weekly no-lesson day. Only "sunday" is
	// supported today; the key exists so existing files keep working
	// if that ever loosens.
	RestDay string `toml:"rest_day"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RestDay:  "sunday",
		LogLevel: "warn",
	}
}

// ParseLogLevel resolves the configured log level. An empty or
// unknown value falls back to the default level with an error so the
// caller can warn about the typo.
func (c *Config) ParseLogLevel() (log.Level, error) {
	if c.LogLevel == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Path returns the config file location: $TEKKIE_CONFIG, then
// $XDG_CONFIG_HOME/tekkie/config.toml, then ~/.config/tekkie/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "tekkie", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tekkie", "config.toml"), nil
}

// Load reads the config file, falling back to defaults when the file
// does not exist. A file that exists but cannot be parsed is an error;
// silently ignoring it would hide typos from the parent editing it.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
