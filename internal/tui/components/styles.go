package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/tui/theme"
)

// Styles derived from the theme, rebuilt by InitStyles
var (
	CardStyle         lipgloss.Style
	SelectedCardStyle lipgloss.Style
	CardTitleStyle    lipgloss.Style
	DoneTitleStyle    lipgloss.Style
	MetaStyle         lipgloss.Style
	MetaLabelStyle    lipgloss.Style
	OverdueStyle      lipgloss.Style

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	FormBoxStyle    lipgloss.Style
	ConfirmBoxStyle lipgloss.Style
	HelpBoxStyle    lipgloss.Style
	SubtleStyle     lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal))

	DoneTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Done)).
		Strikethrough(true)

	MetaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Delete))

	MetaLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	activeTabBorder := lipgloss.Border{
		Top: "─", Bottom: " ", Left: "│", Right: "│",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "┘", BottomRight: "└",
	}
	tabBorder := lipgloss.Border{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "┴", BottomRight: "┴",
	}

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	TabGapStyle = lipgloss.NewStyle().
		Border(tabBorder, false, false, true, false).
		BorderForeground(lipgloss.Color(theme.Subtle))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
