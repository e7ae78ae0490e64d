package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// handleDeleteConfirm handles task deletion confirmation
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.deleteTaskID = 0
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteTask performs the actual task deletion
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	id := m.deleteTaskID
	m.deleteTaskID = 0
	m.UiState.SetMode(state.NormalMode)
	if id == 0 {
		return m, nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if !m.Service.Delete(ctx, id) {
		slog.Error("Error deleting task", "task_id", id)
		m.NotificationState.Add(state.LevelError, "Failed to delete task")
		return m, nil
	}
	m.NotificationState.Add(state.LevelInfo, "Task deleted")
	return m, m.loadTasks()
}

// handleDiscardConfirm asks before throwing away dialog edits
func (m Model) handleDiscardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.closeForm()
	case "n", "N", "esc":
		// back to the dialog with its values intact
		m.UiState.SetMode(state.FormMode)
	}
	return m, nil
}
