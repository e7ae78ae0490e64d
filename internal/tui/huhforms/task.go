// Package huhforms builds the huh dialogs used by the TUI
package huhforms

import (
	"errors"
	"strings"
	"time"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// ErrInvalidDeadline is shown under the deadline field
var ErrInvalidDeadline = errors.New("invalid deadline")

// TaskFormOptions configures the create/edit dialog
type TaskFormOptions struct {
	Priorities       []*models.Priority
	DeadlineLayout   string
	Location         *time.Location
	DescriptionLines int
	Theme            huh.Theme
	KeyMap           *huh.KeyMap // nil means DialogKeyMap over the default mappings
}

// CreateTaskForm creates a huh form for adding/editing a task.
// The form uses pointers to update values in place.
func CreateTaskForm(values *state.TaskFormValues, confirm *bool, opts TaskFormOptions) *huh.Form {
	options := make([]huh.Option[int], 0, len(opts.Priorities))
	for _, p := range opts.Priorities {
		options = append(options, huh.NewOption(p.Level, p.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("What needs doing?").
			CharLimit(models.MaxNameLength).
			Value(&values.Name),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported").
			CharLimit(5000).
			Lines(max(opts.DescriptionLines, 3)).
			Value(&values.Description),
	}

	if len(options) > 0 {
		fields = append(fields,
			huh.NewSelect[int]().
				Key("priority").
				Title("Priority").
				Options(options...).
				Value(&values.PriorityID),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("deadline").
			Title("Deadline").
			Description(opts.DeadlineLayout).
			Validate(func(s string) error {
				if _, err := ParseFormDeadline(s, opts.DeadlineLayout, opts.Location); err != nil {
					return ErrInvalidDeadline
				}
				return nil
			}).
			Value(&values.Deadline),

		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	keymap := opts.KeyMap
	if keymap == nil {
		keymap = DialogKeyMap(config.DefaultKeyMappings())
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(keymap).
		WithShowHelp(false)
	if opts.Theme != nil {
		form = form.WithTheme(opts.Theme)
	}
	return form
}

// ParseFormDeadline reads a deadline typed in the display layout, falling back to the
// stored ISO form. Blank input clears the deadline.
func ParseFormDeadline(text, layout string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(layout, text, loc); err == nil {
		return t, nil
	}
	return database.ParseDeadline(text, loc)
}

// FormatFormDeadline renders a deadline for the form; zero becomes blank
func FormatFormDeadline(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
