package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/lootgridgo/internal/ctxlog"
	"github.com/specialistvlad/lootgridgo/internal/policy"
	"github.com/specialistvlad/lootgridgo/internal/settings"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	policy policy.Policy
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and the extraction policy: the built-in defaults,
// overlaid with the settings file when one is configured.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	pol, err := settings.Load(ctx, cfg.SettingsPath, policy.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger.Debug("Extraction policy ready.", "settings_path", cfg.SettingsPath, "entity_prefix", pol.EntityPrefix)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		policy: pol,
	}, nil
}

// Policy returns the effective extraction policy. This is primarily for testing.
func (a *App) Policy() policy.Policy {
	return a.policy.Clone()
}
