package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/models"
)

// TasksLoadedMsg carries a fresh read of the store
type TasksLoadedMsg struct {
	Tasks      []*models.Task
	Priorities []*models.Priority
}

// loadTasks re-reads every task and priority. Storage failures arrive as empty slices.
func (m Model) loadTasks() tea.Cmd {
	svc := m.Service
	ctx := m.Ctx
	return func() tea.Msg {
		return TasksLoadedMsg{
			Tasks:      svc.ListAll(ctx),
			Priorities: svc.ListPriorities(ctx),
		}
	}
}
