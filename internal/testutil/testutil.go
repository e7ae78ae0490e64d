// Package testutil provides fixtures shared by package tests
package testutil

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/models"
)

// SetupTestApp opens a freshly seeded store in a temp dir. Deadlines are read and
// written in UTC so tests do not depend on the machine's zone.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "lista.db")
	a, err := app.Open(context.Background(), dbPath, app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a
}

// CreateTestTask inserts an open task with priority 1 and returns its ID
func CreateTestTask(t *testing.T, a *app.App, name string) int {
	t.Helper()

	task := &models.Task{
		Name:        name,
		Description: name + " description",
		PriorityID:  1,
		Deadline:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if !a.TaskService.Insert(context.Background(), task) {
		t.Fatalf("Failed to insert test task %q", name)
	}
	return task.ID
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
