// Package launcher runs the interactive list
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/tui"
)

// Launch starts the TUI over application and blocks until the user quits or the
// process receives SIGINT/SIGTERM. Extra options are passed to the Bubble Tea program.
func Launch(ctx context.Context, application *app.App, cfg *config.Config, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting TUI", "db", application.DBPath())

	model := tui.InitialModel(ctx, application.TaskService, cfg)
	model.Location = application.Location()

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
	if _, err := p.Run(); err != nil {
		// a cancelled context kills the program; that is a normal shutdown
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
