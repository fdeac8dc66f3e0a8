package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/ctxlog"
	"github.com/vk/projectgrid/internal/fsutil"
	"github.com/vk/projectgrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	config       *Config
	settingsPath string
	settings     *config.Settings
	registry     *registry.Registry
}

// NewApp is the constructor for the main application. It loads the settings
// file, builds and validates the registry, and seals it. Any configuration
// error aborts construction; command output goes to outW and logs to logW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if !fsutil.IsDir(cfg.RootDir) {
		return nil, fmt.Errorf("root directory '%s' does not exist or is not a directory", cfg.RootDir)
	}

	settingsPath := cfg.SettingsPath
	if settingsPath == "" {
		found, err := fsutil.FindFirstFile(cfg.RootDir, SettingsFileNames...)
		if err != nil {
			return nil, fmt.Errorf("no settings file found: %w", err)
		}
		settingsPath = found
	}
	logger.Debug("Settings file selected.", "path", settingsPath)

	loader, err := loaderFor(settingsPath)
	if err != nil {
		return nil, err
	}
	settings, err := loader.Load(ctx, settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger.Debug("Settings loaded into unified model.", "statements", len(settings.Statements))

	reg := registry.New(os.DirFS(cfg.RootDir))
	if err := reg.Apply(ctx, settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	reg.Seal()
	logger.Debug("Registry validation passed.")

	return &App{
		outW:         outW,
		logger:       logger,
		config:       cfg,
		settingsPath: settingsPath,
		settings:     settings,
		registry:     reg,
	}, nil
}

// Registry returns the application's sealed registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// SettingsPath returns the settings file the registry was loaded from.
func (a *App) SettingsPath() string {
	return a.settingsPath
}

// Settings returns the format-agnostic settings the registry was built from.
func (a *App) Settings() *config.Settings {
	return a.settings
}
