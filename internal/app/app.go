// Package app is the container shared by the TUI and the CLI
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/lista/internal/database"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	db     *sql.DB
	dbPath string
	opts   appConfig

	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService taskservice.Service
}

// Open seeds (if needed) and opens the store at dbPath, then builds the services on top of it.
func Open(ctx context.Context, dbPath string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return New(db, dbPath, opts...), nil
}

// New creates a new App over an already opened handle.
func New(db *sql.DB, dbPath string, opts ...Option) *App {
	cfg := appConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.location == nil {
		cfg.location = time.Local
	}

	a := &App{db: db, dbPath: dbPath, opts: cfg}
	a.wire()
	return a
}

func (a *App) wire() {
	repo := database.NewRepository(a.db, database.WithLocation(a.opts.location))
	a.repo = repo
	a.TaskService = taskservice.NewService(repo, a.opts.logger)
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Location is the zone deadlines are interpreted in
func (a *App) Location() *time.Location {
	return a.opts.location
}

// DBPath is the private store file in use
func (a *App) DBPath() string {
	return a.dbPath
}

// Reset closes the store, replaces it with a fresh copy of the seed image
// and reopens it. Every task is lost.
func (a *App) Reset(ctx context.Context) error {
	if err := a.db.Close(); err != nil {
		a.opts.logger.Error("error closing db before reset", "error", err)
	}

	if err := database.Reseed(a.dbPath); err != nil {
		return fmt.Errorf("failed to reseed store: %w", err)
	}

	db, err := database.InitDB(ctx, a.dbPath)
	if err != nil {
		return fmt.Errorf("failed to reopen store: %w", err)
	}
	a.db = db
	a.wire()
	return nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
