package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/tui/huhforms"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// handleNormalMode handles keys while browsing the list
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// any key press dismisses the last banner
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.Keys.Add):
		return m.openCreateForm()

	case key.Matches(msg, m.Keys.Edit):
		return m.openEditForm()

	case key.Matches(msg, m.Keys.Delete):
		if task := m.CurrentTask(); task != nil {
			m.deleteTaskID = task.ID
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
		return m, nil

	case key.Matches(msg, m.Keys.ToggleDone):
		return m.toggleDone()

	case key.Matches(msg, m.Keys.Expand):
		if task := m.CurrentTask(); task != nil {
			m.UiState.ToggleExpanded(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		if m.UiState.Selected() > 0 {
			m.UiState.SetSelected(m.UiState.Selected() - 1)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.UiState.Selected() < len(m.VisibleTasks())-1 {
			m.UiState.SetSelected(m.UiState.Selected() + 1)
		}
		return m, nil

	case key.Matches(msg, m.Keys.SwitchView):
		m.UiState.SetFilter(m.UiState.Filter().Next())
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.UiState.SetMode(state.SearchMode)
		m.SearchInput.SetValue(m.UiState.SearchQuery())
		cmd := m.SearchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.Keys.Sort):
		m.UiState.ToggleSort()
		m.UiState.SetSelected(0)
		return m, nil

	case key.Matches(msg, m.Keys.Reload):
		return m, m.loadTasks()

	case msg.String() == "esc":
		// esc clears an active search
		if m.UiState.SearchQuery() != "" {
			m.UiState.SetSearchQuery("")
			m.UiState.SetSelected(0)
		}
		return m, nil
	}

	return m, nil
}

// openCreateForm opens the dialog for a new task
func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	deadline := models.DefaultDeadline(m.Now().In(m.Location))
	m.FormState.Open(0, state.TaskFormValues{
		PriorityID: m.AppState.DefaultPriorityID(),
		Deadline:   huhforms.FormatFormDeadline(deadline, m.Config.Display.DeadlineFormat),
	})
	return m.showForm()
}

// openEditForm opens the dialog for the selected task
func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	task := m.CurrentTask()
	if task == nil {
		return m, nil
	}
	m.FormState.Open(task.ID, state.TaskFormValues{
		Name:        task.Name,
		Description: task.Description,
		PriorityID:  task.PriorityID,
		Deadline:    huhforms.FormatFormDeadline(task.Deadline.In(m.Location), m.Config.Display.DeadlineFormat),
		Done:        task.Done,
	})
	return m.showForm()
}

// showForm builds the huh form over the current FormState values and enters FormMode
func (m Model) showForm() (tea.Model, tea.Cmd) {
	m.FormState.Confirm = true
	m.FormState.Form = huhforms.CreateTaskForm(&m.FormState.Values, &m.FormState.Confirm, m.formOptions())
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.Form.Init()
}

// toggleDone flips the selected task between active and completed
func (m Model) toggleDone() (tea.Model, tea.Cmd) {
	task := m.CurrentTask()
	if task == nil {
		return m, nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if !m.Service.SetDone(ctx, task.ID, !task.Done) {
		slog.Error("Error toggling task", "task_id", task.ID)
		m.NotificationState.Add(state.LevelError, "Failed to update task")
		return m, nil
	}

	if task.Done {
		m.NotificationState.Add(state.LevelInfo, "Task reopened")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Task completed")
	}
	return m, m.loadTasks()
}
