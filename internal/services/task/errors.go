package task

import "errors"

// Validation errors, surfaced by the TUI and CLI as user-facing messages
var (
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrNameTooLong     = errors.New("task name cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidPriority = errors.New("invalid priority ID")
)
