package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/config/colors"
)

// dialogPalette picks the scheme colors for the create or edit dialog
type dialogPalette struct {
	frame    string // focused border, cursor and selector
	title    string
	text     string
	subtle   string
	errorFg  string
	selected string // chosen priority and the "Yes" button
}

func newDialogPalette(scheme colors.ColorScheme, editing bool) dialogPalette {
	frame := scheme.Create
	if editing {
		frame = scheme.Edit
	}
	return dialogPalette{
		frame:    frame,
		title:    scheme.Title,
		text:     scheme.Normal,
		subtle:   scheme.Subtle,
		errorFg:  scheme.Delete,
		selected: scheme.Accent,
	}
}

// DialogTheme styles the task dialog. The frame takes the scheme's create color for a
// new task and its edit color for an existing one, matching the dialog border.
func DialogTheme(scheme colors.ColorScheme, editing bool) huh.Theme {
	p := newDialogPalette(scheme, editing)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		frame := lipgloss.Color(p.frame)
		subtle := lipgloss.Color(p.subtle)
		text := lipgloss.Color(p.text)
		errorFg := lipgloss.Color(p.errorFg)
		selected := lipgloss.Color(p.selected)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(frame)
		f.Title = f.Title.Foreground(lipgloss.Color(p.title)).Bold(true)
		f.Description = f.Description.Foreground(subtle).Italic(true)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(errorFg)
		f.ErrorMessage = f.ErrorMessage.Foreground(errorFg)

		// priority select
		f.SelectSelector = f.SelectSelector.Foreground(frame)
		f.SelectedOption = f.SelectedOption.Foreground(selected).Bold(true)
		f.UnselectedOption = f.UnselectedOption.Foreground(text)

		// "Save this task?"
		f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(frame).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(text).Background(subtle)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(frame)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(frame)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(subtle).Bold(false)

		return s
	})
}
