// Package notifications renders the inline banners shown next to the tabs
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/tui/state"
	"github.com/thenoetrevino/lista/internal/tui/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel) style {
	if level == state.LevelError {
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	}
	return style{icon: "•", foreground: theme.InfoFg, background: theme.InfoBg}
}

// RenderInline renders a compact single-line notification
func RenderInline(n state.Notification) string {
	s := styleFor(n.Level)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}
