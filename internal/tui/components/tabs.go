package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one completion view in the tab bar
type Tab struct {
	Title string
	Count int
}

// Label is the tab text, e.g. "Active Todos (3)"
func (t Tab) Label() string {
	return fmt.Sprintf("%s (%d)", t.Title, t.Count)
}

// RenderTabs draws the Active/Completed tab bar. The bottom rule runs from the
// last tab to the right edge, leaving room for notification on the same row.
//
//	╭──────────────────╮╭─────────────────────╮
//	│ Active Todos (3) ││ Completed Todos (1) │──────────── ✕ notification
func RenderTabs(tabs []Tab, selected int, width int, notification string) string {
	cells := make([]string, 0, len(tabs)+2)
	for i, tab := range tabs {
		style := TabStyle
		if i == selected {
			style = ActiveTabStyle
		}
		cells = append(cells, style.Render(tab.Label()))
	}

	used := 0
	for _, c := range cells {
		used += lipgloss.Width(c)
	}
	rule := max(width-used-lipgloss.Width(notification), 0)
	cells = append(cells, TabGapStyle.Render(strings.Repeat(" ", rule)))

	if notification != "" {
		cells = append(cells, notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}
