package models

import "errors"

var (
	// ErrTaskNotFound indicates no row matched the task ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidDeadline indicates stored deadline text could not be parsed
	ErrInvalidDeadline = errors.New("invalid deadline")
)
