package models

import "time"

// Task represents a single to-do item
type Task struct {
	ID          int       `json:"id"` // 0 until the store assigns one
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriorityID  int       `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Done        bool      `json:"done"`
}

// GetID lets the CLI print bare IDs in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// IsPersisted reports whether the store has assigned an ID
func (t *Task) IsPersisted() bool {
	return t.ID > 0
}

// Clone returns a copy that can be mutated without touching the original
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
