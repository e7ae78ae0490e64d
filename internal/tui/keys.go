package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/lista/internal/config"
)

// KeyMap holds the normal mode bindings built from the user's key mappings
type KeyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	ToggleDone key.Binding
	Expand     key.Binding
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Search     key.Binding
	Sort       key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap creates bindings from config. Arrow keys always work for navigation.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add:        key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add")),
		Edit:       key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit")),
		Delete:     key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete")),
		ToggleDone: key.NewBinding(key.WithKeys(km.ToggleDone), key.WithHelp(km.ToggleDone, "toggle done")),
		Expand:     key.NewBinding(key.WithKeys(km.ExpandTask), key.WithHelp(km.ExpandTask, "expand")),
		Up:         key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		Down:       key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),
		SwitchView: key.NewBinding(key.WithKeys(km.SwitchView), key.WithHelp(km.SwitchView, "active/completed")),
		Search:     key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		Sort:       key.NewBinding(key.WithKeys(km.Sort), key.WithHelp(km.Sort, "sort by deadline")),
		Reload:     key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp is shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.ToggleDone, k.SwitchView, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.SwitchView},
		{k.Add, k.Edit, k.Delete, k.ToggleDone},
		{k.Search, k.Sort, k.Reload},
		{k.Help, k.Quit},
	}
}
