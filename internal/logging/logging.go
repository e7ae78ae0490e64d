// Package logging wires slog to a rotating file under the lista data directory
package logging

import (
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lista/internal/config"
)

// Init initializes the logging system, writing logs to cfg.File.
// Uses text format for human readability.
// The returned closer releases the log file.
func Init(cfg config.LoggingConfig) (io.Closer, error) {
	writer, err := NewRotatingWriter(RotationConfig{
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, err
	}

	slog.SetDefault(New(writer, cfg.Level))

	// Redirect standard log package output to the same file
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags)

	return writer, nil
}

// New builds a text logger at the named level
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel maps a config level name to a slog level; unknown names mean debug
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
