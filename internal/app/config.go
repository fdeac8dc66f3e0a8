package app

import (
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "console"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RootDir      string // directories are resolved against it
	SettingsPath string // empty means discover inside RootDir

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level '%s': must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format '%s': must be one of %v", cfg.LogFormat, logFormats)
	}
	return &cfg, nil
}
