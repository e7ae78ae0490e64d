package database

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SchemaVersion is the user_version stamped into seed/lista.db.
// Bump it together with the seed image; older copies are replaced on next start.
const SchemaVersion = 1

// seedImage is the pristine database copied into the user's data directory
//
//go:embed seed/lista.db
var seedImage []byte

// EnsureSeed copies the seed image to dbPath when no copy exists yet, and recopies it when
// the existing copy reports an older schema version. Failures are logged, not returned:
// callers find out when their first query hits a missing table.
func EnsureSeed(ctx context.Context, dbPath string) {
	if err := ensureSeed(ctx, dbPath, bytes.NewReader(seedImage), SchemaVersion); err != nil {
		slog.Error("Error copying database", "path", dbPath, "error", err)
	}
}

// Reseed discards the store at dbPath and copies the seed image again.
// The discarded file is kept next to it with a .bak suffix.
func Reseed(dbPath string) error {
	return recopySeed(dbPath, bytes.NewReader(seedImage))
}

func ensureSeed(ctx context.Context, dbPath string, seed io.Reader, want int) error {
	_, err := os.Stat(dbPath)
	if errors.Is(err, os.ErrNotExist) {
		return copySeed(dbPath, seed)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dbPath, err)
	}

	have, err := readUserVersion(ctx, dbPath)
	if err != nil {
		return err
	}
	if have >= want {
		return nil
	}

	slog.Warn("database schema is outdated, replacing with seed copy",
		"path", dbPath, "have", have, "want", want)
	return recopySeed(dbPath, seed)
}

func recopySeed(dbPath string, seed io.Reader) error {
	if _, err := os.Stat(dbPath); err == nil {
		backup := dbPath + ".bak"
		if err := os.Rename(dbPath, backup); err != nil {
			return fmt.Errorf("failed to move %s aside: %w", dbPath, err)
		}
		slog.Info("previous database kept", "backup", backup)
	}
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s%s: %w", dbPath, suffix, err)
		}
	}
	return copySeed(dbPath, seed)
}

// copySeed writes seed next to dbPath and renames it into place so a crash never
// leaves a half-written store behind
func copySeed(dbPath string, seed io.Reader) error {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".lista-seed-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmp.Name())
	}()

	n, err := io.Copy(tmp, seed)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write seed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dbPath); err != nil {
		return fmt.Errorf("failed to move seed into place: %w", err)
	}

	slog.Debug("Database copied successfully", "path", dbPath, "bytes", n)
	return nil
}

func readUserVersion(ctx context.Context, dbPath string) (int, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
