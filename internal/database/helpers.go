package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// Deadline layouts, shortest first. Minute precision is written without seconds.
const (
	deadlineMinuteLayout = "2006-01-02T15:04"
	deadlineSecondLayout = "2006-01-02T15:04:05"
	deadlineFracLayout   = "2006-01-02T15:04:05.999999999"
)

// withConn acquires a connection from the pool for the duration of fn and releases it afterwards.
// Every repository operation runs exactly one statement inside it.
func withConn(ctx context.Context, db *sql.DB, fn func(*sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to release connection", "error", err)
		}
	}()

	return fn(conn)
}

// FormatDeadline encodes t as a zone-less local date-time in loc
func FormatDeadline(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(loc)
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(deadlineMinuteLayout)
	}
	return t.Format(deadlineFracLayout)
}

// ParseDeadline decodes text written by FormatDeadline (or any ISO local date-time with
// minute, second or fractional precision). Empty text yields the zero time.
func ParseDeadline(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{deadlineMinuteLayout, deadlineSecondLayout, deadlineFracLayout} {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDeadline, text)
}

// nullIntToInt converts sql.NullInt64 to int.
// Returns 0 if the value is not valid.
func nullIntToInt(nv sql.NullInt64) int {
	if nv.Valid {
		return int(nv.Int64)
	}
	return 0
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// priorityArg stores 0 as NULL so a missing priority does not trip the foreign key
func priorityArg(id int) any {
	if id <= 0 {
		return nil
	}
	return id
}
