package task

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// Service is the boundary the TUI and CLI talk to. Storage failures never cross it:
// they are logged and turned into false or an empty slice.
type Service interface {
	// Read operations
	ListAll(ctx context.Context) []*models.Task
	ListPriorities(ctx context.Context) []*models.Priority
	Get(ctx context.Context, taskID int) (*models.Task, bool)

	// Write operations
	Insert(ctx context.Context, task *models.Task) bool
	Update(ctx context.Context, task *models.Task) bool
	Delete(ctx context.Context, taskID int) bool
	SetDone(ctx context.Context, taskID int, done bool) bool

	// Validate checks user input before it reaches the store
	Validate(task *models.Task) error
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new task service. A nil logger falls back to slog.Default().
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("component", "task"),
	}
}

// Insert stores a new task and writes the assigned ID back into task.ID.
// The incoming ID is ignored.
func (s *service) Insert(ctx context.Context, task *models.Task) bool {
	if err := s.Validate(task); err != nil {
		s.logger.Warn("Insert rejected", "error", err)
		return false
	}

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error("Insert failed", "error", err)
		return false
	}

	task.ID = id
	s.logger.Debug("task inserted", "id", id)
	return true
}

// Update overwrites the stored row with task's fields. False when no row has task.ID.
func (s *service) Update(ctx context.Context, task *models.Task) bool {
	if !task.IsPersisted() {
		s.logger.Warn("Update rejected", "error", ErrInvalidTaskID, "id", task.ID)
		return false
	}
	if err := s.Validate(task); err != nil {
		s.logger.Warn("Update rejected", "error", err, "id", task.ID)
		return false
	}

	rows, err := s.repo.UpdateTask(ctx, task)
	if err != nil {
		s.logger.Error("Update failed", "error", err, "id", task.ID)
		return false
	}

	s.logger.Debug("Update result", "rows", rows, "id", task.ID)
	return rows > 0
}

// Delete removes the task. False when no row has taskID.
func (s *service) Delete(ctx context.Context, taskID int) bool {
	rows, err := s.repo.DeleteTask(ctx, taskID)
	if err != nil {
		s.logger.Error("Delete failed", "error", err, "id", taskID)
		return false
	}
	return rows > 0
}

// SetDone flips the completion state of a stored task
func (s *service) SetDone(ctx context.Context, taskID int, done bool) bool {
	task, ok := s.Get(ctx, taskID)
	if !ok {
		return false
	}
	task.Done = done
	return s.Update(ctx, task)
}

// ListAll returns every task, or an empty slice when the store cannot be read
func (s *service) ListAll(ctx context.Context) []*models.Task {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		s.logger.Error("Fetching tasks failed", "error", err)
		return []*models.Task{}
	}
	if tasks == nil {
		return []*models.Task{}
	}
	return tasks
}

// ListPriorities returns the seeded priority levels in storage order
func (s *service) ListPriorities(ctx context.Context) []*models.Priority {
	priorities, err := s.repo.GetAllPriorities(ctx)
	if err != nil {
		s.logger.Error("Fetching priorities failed", "error", err)
		return []*models.Priority{}
	}
	if priorities == nil {
		return []*models.Priority{}
	}
	return priorities
}

// Get returns a single task
func (s *service) Get(ctx context.Context, taskID int) (*models.Task, bool) {
	if taskID <= 0 {
		return nil, false
	}
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		s.logger.Error("Fetching task failed", "error", err, "id", taskID)
		return nil, false
	}
	return task, true
}

// Validate enforces the rules the create/edit dialog shows to the user
func (s *service) Validate(task *models.Task) error {
	return Validate(task)
}

// Validate is the stateless form of Service.Validate
func Validate(task *models.Task) error {
	name := strings.TrimSpace(task.Name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return ErrNameTooLong
	}
	if task.PriorityID < 0 {
		return ErrInvalidPriority
	}
	return nil
}
