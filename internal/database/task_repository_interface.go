package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
// Update and Delete report affected rows so callers can tell a missing ID from success.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) (int, error)
	UpdateTask(ctx context.Context, task *models.Task) (int64, error)
	DeleteTask(ctx context.Context, id int) (int64, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
