package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// handleSearchMode filters the list live as the query is typed
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.exitSearch()
		return m, nil
	case "esc":
		m.UiState.SetSearchQuery("")
		m.exitSearch()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.UiState.SetSearchQuery(m.SearchInput.Value())
	m.UiState.SetSelected(0)
	return m, cmd
}

func (m *Model) exitSearch() {
	m.SearchInput.Blur()
	m.UiState.SetSelected(0)
	m.UiState.SetMode(state.NormalMode)
}
