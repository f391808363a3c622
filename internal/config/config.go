// Package config resolves Peak settings: built-in defaults, then an optional
// YAML file, then PEAK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"peak/internal/storage"
)

// Config holds every user-tunable setting.
type Config struct {
	DBPath  string `yaml:"db_path" env:"PEAK_DB_PATH"`
	LogFile string `yaml:"log_file" env:"PEAK_LOG_FILE"`
	// CountdownTarget is a local date or date-time; empty means next New Year.
	CountdownTarget string `yaml:"countdown_target" env:"PEAK_COUNTDOWN_TARGET"`
	CountdownLabel  string `yaml:"countdown_label" env:"PEAK_COUNTDOWN_LABEL"`
}

// DefaultPath returns ~/.config/peak/config.yaml.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "peak", "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		dbPath = ".peak.db"
	}
	return &Config{
		DBPath:         dbPath,
		CountdownLabel: "PROTOCOL: PEAK",
	}
}

// Load applies the YAML file at path (if it exists) and then the environment
// on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal YAML config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

var targetLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Target resolves the countdown target in loc. now is used for the default.
func (c *Config) Target(now time.Time) (time.Time, error) {
	s := strings.TrimSpace(c.CountdownTarget)
	if s == "" {
		return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid countdown target %q", c.CountdownTarget)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
	}
	return p
}
