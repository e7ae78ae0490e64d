// Package cli holds the plumbing shared by the lista subcommands
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when App was injected and belongs to the caller
	owned bool
}

// WithApp attaches an already opened App; commands use it instead of opening the store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig attaches the loaded config for commands to read
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the attached config, or defaults when none is attached
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// AppFromContext returns the injected App without opening anything
func AppFromContext(ctx context.Context) (*app.App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}

// GetCLIFromContext returns a CLI over the injected App, or opens the configured store
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)

	if a, ok := AppFromContext(ctx); ok {
		return &CLI{App: a, Config: cfg}, nil
	}

	return NewCLI(ctx, cfg)
}

// NewCLI opens the store named by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg.Database.Path, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
