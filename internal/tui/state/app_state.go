package state

import "github.com/thenoetrevino/lista/internal/models"

// AppState holds the data loaded from the store.
// It is replaced wholesale after every mutation, mirroring a fresh query.
type AppState struct {
	tasks      []*models.Task
	priorities []*models.Priority
}

// NewAppState creates an AppState with the given data
func NewAppState(tasks []*models.Task, priorities []*models.Priority) *AppState {
	s := &AppState{}
	s.SetTasks(tasks)
	s.SetPriorities(priorities)
	return s
}

// Tasks returns every loaded task in storage order
func (s *AppState) Tasks() []*models.Task {
	return s.tasks
}

// SetTasks replaces the loaded tasks
func (s *AppState) SetTasks(tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	s.tasks = tasks
}

// Priorities returns the priority levels in storage order
func (s *AppState) Priorities() []*models.Priority {
	return s.priorities
}

// SetPriorities replaces the priority levels
func (s *AppState) SetPriorities(priorities []*models.Priority) {
	if priorities == nil {
		priorities = []*models.Priority{}
	}
	s.priorities = priorities
}

// PriorityLabel returns the level name for id, or models.UnknownPriority
func (s *AppState) PriorityLabel(id int) string {
	return models.PriorityLabel(s.priorities, id)
}

// DefaultPriorityID is the first priority level, or 0 when none are loaded
func (s *AppState) DefaultPriorityID() int {
	if len(s.priorities) == 0 {
		return 0
	}
	return s.priorities[0].ID
}
