package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Ctx != nil {
		select {
		case <-m.Ctx.Done():
			return m, tea.Quit
		default:
		}
	}

	// Store reloads and resizes apply in every mode, the open dialog included
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		hadPriorities := len(m.AppState.Priorities()) > 0
		m.AppState.SetTasks(msg.Tasks)
		m.AppState.SetPriorities(msg.Priorities)
		m.UiState.ClampSelection(len(m.VisibleTasks()))

		// a dialog opened before the first load has no priority select yet
		if m.UiState.Mode() == state.FormMode && !hadPriorities && len(msg.Priorities) > 0 {
			m.FormState.SetDefaultPriority(m.AppState.DefaultPriorityID())
			return m.showForm()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		// the form sizes itself from the same message
		if m.UiState.Mode() != state.FormMode {
			return m, nil
		}
	}

	// The form receives everything else while open, including its own internal messages
	if m.UiState.Mode() == state.FormMode {
		return m.updateTaskForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}

	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DiscardConfirmMode:
		return m.handleDiscardConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	}
	return m, nil
}

// handleHelpMode closes the help overlay on any of its exit keys
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.ShowHelp:
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
