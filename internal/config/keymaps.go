package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleDone string `yaml:"toggle_done"`
	ExpandTask string `yaml:"expand_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	SwitchView string `yaml:"switch_view"`

	// List
	Search string `yaml:"search"`
	Sort   string `yaml:"sort"`
	Reload string `yaml:"reload"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleDone: "space",
		ExpandTask: "enter",
		SaveForm:   "ctrl+s",

		PrevTask:   "k",
		NextTask:   "j",
		SwitchView: "tab",

		Search: "/",
		Sort:   "s",
		Reload: "r",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleDone, defaults.ToggleDone)
	fill(&k.ExpandTask, defaults.ExpandTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.SwitchView, defaults.SwitchView)
	fill(&k.Search, defaults.Search)
	fill(&k.Sort, defaults.Sort)
	fill(&k.Reload, defaults.Reload)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
