package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom line
type StatusBarProps struct {
	Width int
	Left  string // e.g. counts and active search
	Help  string // rendered short help
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := SubtleStyle.Render(props.Left)
	rightRendered := props.Help

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
