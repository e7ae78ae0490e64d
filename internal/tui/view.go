package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/tui/components"
	"github.com/thenoetrevino/lista/internal/tui/layers"
	"github.com/thenoetrevino/lista/internal/tui/notifications"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.renderList(),
		m.renderStatusBar(),
	)

	return layers.Compose(base, m.overlay())
}

func (m Model) renderTabs() string {
	var banner string
	if n, ok := m.NotificationState.Latest(); ok {
		banner = notifications.RenderInline(n)
	}

	tabs := []components.Tab{
		{Title: state.FilterActive.Title(), Count: m.countTasks(state.FilterActive)},
		{Title: state.FilterCompleted.Title(), Count: m.countTasks(state.FilterCompleted)},
	}
	selected := 0
	if m.UiState.Filter() == state.FilterCompleted {
		selected = 1
	}
	return components.RenderTabs(tabs, selected, m.UiState.Width(), banner)
}

// countTasks counts the loaded tasks a tab would show, ignoring search
func (m Model) countTasks(f state.Filter) int {
	n := 0
	for _, t := range m.AppState.Tasks() {
		if t.Done == f.Done() {
			n++
		}
	}
	return n
}

// renderList draws as many cards as fit, keeping the selected one visible
func (m Model) renderList() string {
	height := m.UiState.ContentHeight()
	tasks := m.VisibleTasks()

	box := lipgloss.NewStyle().Height(height).MaxHeight(height)

	if len(tasks) == 0 {
		msg := "Nothing here. Press " + m.Config.KeyMappings.AddTask + " to add a task."
		if m.UiState.SearchQuery() != "" {
			msg = fmt.Sprintf("No tasks match %q.", m.UiState.SearchQuery())
		} else if m.UiState.Filter() == state.FilterCompleted {
			msg = "No completed tasks yet."
		}
		return box.Render(components.SubtleStyle.Render(msg))
	}

	now := m.Now()
	cards := make([]string, len(tasks))
	for i, task := range tasks {
		cards[i] = components.RenderTaskCard(components.CardProps{
			Task:           task,
			PriorityLabel:  m.AppState.PriorityLabel(task.PriorityID),
			DeadlineLayout: m.Config.Display.DeadlineFormat,
			Selected:       i == m.UiState.Selected(),
			Expanded:       m.UiState.IsExpanded(task.ID),
			Width:          m.UiState.Width(),
			Now:            now,
		})
	}

	start, end := visibleWindow(cards, m.UiState.Selected(), height)
	return box.Render(strings.Join(cards[start:end], "\n"))
}

// visibleWindow picks the card range [start, end) around selected that fits height
func visibleWindow(cards []string, selected, height int) (int, int) {
	if len(cards) == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), len(cards)-1)

	start, end := selected, selected+1
	used := lipgloss.Height(cards[selected])

	for end < len(cards) && used+lipgloss.Height(cards[end]) <= height {
		used += lipgloss.Height(cards[end])
		end++
	}
	for start > 0 && used+lipgloss.Height(cards[start-1]) <= height {
		start--
		used += lipgloss.Height(cards[start])
	}
	return start, end
}

func (m Model) renderStatusBar() string {
	visible := len(m.VisibleTasks())
	left := fmt.Sprintf("%d %s", visible, plural(visible, "task", "tasks"))
	if m.UiState.SortByDeadline() {
		left += " · by deadline"
	}
	if q := m.UiState.SearchQuery(); q != "" {
		left += fmt.Sprintf(" · search %q", q)
	}

	if m.UiState.Mode() == state.SearchMode {
		return m.SearchInput.View()
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Help:  m.Help.View(m.Keys),
	})
}

// overlay returns the dialog layer for the current mode, or nil
func (m Model) overlay() *lipgloss.Layer {
	var content string

	switch m.UiState.Mode() {
	case state.FormMode:
		if m.FormState.Form == nil {
			return nil
		}
		title := "New Task"
		if m.FormState.IsEditing() {
			title = "Edit Task · " + deleteFromFormKey + " to delete"
		}
		content = components.FormBoxStyle.
			Width(max(m.UiState.Width()/2, 40)).
			Render(components.MetaLabelStyle.Render(title) + "\n\n" + m.FormState.Form.View())

	case state.DeleteConfirmMode:
		name := "this task"
		for _, t := range m.AppState.Tasks() {
			if t.ID == m.deleteTaskID {
				name = fmt.Sprintf("%q", t.Name)
				break
			}
		}
		content = components.ConfirmBoxStyle.Render(fmt.Sprintf("Delete %s?\n\n[y]es  [n]o", name))

	case state.DiscardConfirmMode:
		content = components.ConfirmBoxStyle.Render("Discard changes?\n\n[y]es  [n]o")

	case state.HelpMode:
		h := m.Help
		h.ShowAll = true
		content = components.HelpBoxStyle.Render("Keys\n\n" + h.View(m.Keys))
	}

	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
