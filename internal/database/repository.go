package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes table repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*PriorityRepo
}

// Option configures a Repository
type Option func(*Repository)

// WithLocation sets the location deadlines are written and read in (time.Local by default)
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.TaskRepo.loc = loc
		}
	}
}

// NewRepository creates a new Repository instance wrapping the given database handle.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	r := &Repository{
		TaskRepo:     &TaskRepo{db: db, loc: time.Local},
		PriorityRepo: &PriorityRepo{db: db},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Wrapper methods for TaskRepo to satisfy DataStore
func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (int, error) {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) UpdateTask(ctx context.Context, task *models.Task) (int64, error) {
	return r.TaskRepo.Update(ctx, task)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) (int64, error) {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

// Wrapper methods for PriorityRepo
func (r *Repository) GetAllPriorities(ctx context.Context) ([]*models.Priority, error) {
	return r.PriorityRepo.GetAll(ctx)
}
