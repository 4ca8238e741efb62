// Package config reads eventbook settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pfrederiksen/eventbook/internal/logger"
)

// Config holds the settings shared by every command
type Config struct {
	FilePath string `env:"EVENTBOOK_FILE"      envDefault:"~/.local/share/eventbook/eventbook.json"`
	LogLevel string `env:"EVENTBOOK_LOG_LEVEL" envDefault:"WARN"`
}

// Load parses the environment and expands ~ in the file path
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	path, err := ExpandPath(cfg.FilePath)
	if err != nil {
		return Config{}, err
	}
	cfg.FilePath = path

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("EVENTBOOK_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// Level returns the configured log level, falling back to WARN
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelWarn
	}
	return level
}

// ExpandPath replaces a leading ~/ with the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
