// Package config loads LATER settings.
//
// Sources, lowest precedence first:
//   - built-in defaults
//   - ~/.later/config.toml (or the path given with -config)
//   - LATER_* environment variables
//
// Command-line flags are applied on top by cmd/later.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/later/internal/logging"
	"github.com/idilsaglam/later/internal/ui"
)

const (
	dirName      = ".later"
	fileName     = "config.toml"
	historyName  = "history"
	defaultTheme = "classic"
)

// Config is the complete LATER configuration.
type Config struct {
	Prompt      string `toml:"prompt"`
	Theme       string `toml:"theme"`
	HistoryFile string `toml:"history_file"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

// Dir returns ~/.later.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns ~/.later/config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Default returns the built-in configuration. History is disabled when the
// home directory cannot be resolved.
func Default() *Config {
	cfg := &Config{
		Prompt:    "later> ",
		Theme:     defaultTheme,
		LogLevel:  "warn",
		LogFormat: "text",
	}
	if dir, err := Dir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, historyName)
	}
	return cfg
}

// Load reads path on top of the defaults and applies env overrides.
// An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides copies non-empty LATER_* variables into cfg.
// LATER_HISTORY_FILE may be set to the empty string to disable history.
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("LATER_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("LATER_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LATER_PROMPT"); v != "" {
		c.Prompt = v
	}
	if v, ok := os.LookupEnv("LATER_HISTORY_FILE"); ok {
		c.HistoryFile = strings.TrimSpace(v)
	}
}

// Validate rejects unknown themes, log levels and log formats.
func (c *Config) Validate() error {
	if _, err := ui.ThemeByName(c.Theme); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormatter(c.LogFormat); err != nil {
		return err
	}
	return nil
}
