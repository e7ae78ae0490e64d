package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger   *slog.Logger
	location *time.Location
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithLocation sets the zone deadlines are read and written in
func WithLocation(loc *time.Location) Option {
	return func(cfg *appConfig) {
		cfg.location = loc
	}
}
