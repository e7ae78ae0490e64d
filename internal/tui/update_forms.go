package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/tui/huhforms"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// deleteFromFormKey deletes the task being edited
const deleteFromFormKey = "ctrl+d"

// updateTaskForm routes messages to the create/edit dialog
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.Form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.FormState.HasChanges() {
				m.UiState.SetMode(state.DiscardConfirmMode)
				return m, nil
			}
			m.closeForm()
			return m, nil

		case m.Config.KeyMappings.SaveForm:
			return m.saveForm()

		case deleteFromFormKey:
			if m.FormState.IsEditing() {
				m.deleteTaskID = m.FormState.EditingTaskID
				m.closeForm()
				m.UiState.SetMode(state.DeleteConfirmMode)
			}
			return m, nil
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.Form = f
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		if !m.FormState.Confirm {
			m.closeForm()
			return m, nil
		}
		return m.saveForm()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

// saveForm validates the dialog and writes the task. On a validation failure the
// dialog is rebuilt with the same values and stays open.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	values := m.FormState.Values

	name := strings.TrimSpace(values.Name)
	if name == "" {
		m.NotificationState.Add(state.LevelError, "Name must not be empty")
		return m.showForm()
	}

	deadline, err := huhforms.ParseFormDeadline(values.Deadline, m.Config.Display.DeadlineFormat, m.Location)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Invalid deadline, use "+m.Config.Display.DeadlineFormat)
		return m.showForm()
	}

	task := &models.Task{
		ID:          m.FormState.EditingTaskID,
		Name:        name,
		Description: strings.TrimSpace(values.Description),
		PriorityID:  values.PriorityID,
		Deadline:    deadline,
		Done:        values.Done,
	}
	if err := m.Service.Validate(task); err != nil {
		m.NotificationState.Add(state.LevelError, capitalize(err.Error()))
		return m.showForm()
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	editing := m.FormState.IsEditing()
	var ok bool
	if editing {
		ok = m.Service.Update(ctx, task)
	} else {
		ok = m.Service.Insert(ctx, task)
	}

	m.closeForm()
	switch {
	case !ok:
		slog.Error("Error saving task", "task_id", task.ID, "editing", editing)
		m.NotificationState.Add(state.LevelError, "Failed to save task")
	case editing:
		m.NotificationState.Add(state.LevelInfo, "Task updated")
	default:
		m.NotificationState.Add(state.LevelInfo, "Task created")
	}
	return m, m.loadTasks()
}

// closeForm clears the dialog and returns to the list
func (m *Model) closeForm() {
	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
