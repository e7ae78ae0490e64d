// Package tui is the Bubble Tea front end
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
	taskservice "github.com/thenoetrevino/lista/internal/services/task"
	"github.com/thenoetrevino/lista/internal/tui/components"
	"github.com/thenoetrevino/lista/internal/tui/huhforms"
	"github.com/thenoetrevino/lista/internal/tui/state"
	"github.com/thenoetrevino/lista/internal/tui/theme"
)

// dbTimeout bounds every store call made from Update
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx      context.Context
	Service  taskservice.Service
	Config   *config.Config
	Location *time.Location
	Now      func() time.Time

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	Keys        KeyMap
	Help        help.Model
	SearchInput textinput.Model

	// deleteTaskID is the task awaiting delete confirmation
	deleteTaskID int
}

// InitialModel creates the TUI model. Data arrives asynchronously through Init.
func InitialModel(ctx context.Context, svc taskservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	search := textinput.New()
	search.Placeholder = "search name or description"
	search.Prompt = "/ "

	return Model{
		Ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		Location:          time.Local,
		Now:               time.Now,
		AppState:          state.NewAppState(nil, nil),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Keys:              NewKeyMap(cfg.KeyMappings),
		Help:              help.New(),
		SearchInput:       search,
	}
}

// Init loads tasks and priorities
func (m Model) Init() tea.Cmd {
	return m.loadTasks()
}

// DbContext returns a context for store calls made while handling a message
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// VisibleTasks applies the completion filter, the search query and the sort order
func (m Model) VisibleTasks() []*models.Task {
	tasks := taskservice.FilterByState(m.AppState.Tasks(), m.UiState.Filter().Done())
	tasks = taskservice.Search(tasks, m.UiState.SearchQuery())
	if m.UiState.SortByDeadline() {
		tasks = taskservice.SortByDeadline(tasks)
	}
	return tasks
}

// CurrentTask returns the selected visible task, or nil when the list is empty
func (m Model) CurrentTask() *models.Task {
	tasks := m.VisibleTasks()
	sel := m.UiState.Selected()
	if sel < 0 || sel >= len(tasks) {
		return nil
	}
	return tasks[sel]
}

func (m Model) formOptions() huhforms.TaskFormOptions {
	return huhforms.TaskFormOptions{
		Priorities:       m.AppState.Priorities(),
		DeadlineLayout:   m.Config.Display.DeadlineFormat,
		Location:         m.Location,
		DescriptionLines: max(m.UiState.Height()/6, 3),
		Theme:            huhforms.DialogTheme(m.Config.ColorScheme, m.FormState.IsEditing()),
		KeyMap:           huhforms.DialogKeyMap(m.Config.KeyMappings),
	}
}
