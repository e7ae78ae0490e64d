package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// PriorityRepository defines the read-only lookups on priority levels.
type PriorityRepository interface {
	GetAllPriorities(ctx context.Context) ([]*models.Priority, error)
}
