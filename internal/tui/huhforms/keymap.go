package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/lista/internal/config"
)

// DialogKeyMap adapts huh's defaults to lista's key mappings: the user's
// previous/next task keys also move through the priority list, and the
// description accepts shift+enter for a new line.
func DialogKeyMap(km config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)

	keymap.Select.Up = key.NewBinding(
		key.WithKeys(withDefaults(km.PrevTask, "up", "ctrl+p")...),
		key.WithHelp("↑/"+km.PrevTask, "higher"),
	)
	keymap.Select.Down = key.NewBinding(
		key.WithKeys(withDefaults(km.NextTask, "down", "ctrl+n")...),
		key.WithHelp("↓/"+km.NextTask, "lower"),
	)

	return keymap
}

// withDefaults prepends a user key to fixed keys, skipping it when empty or repeated
func withDefaults(user string, fixed ...string) []string {
	keys := make([]string, 0, len(fixed)+1)
	if user != "" {
		keys = append(keys, user)
	}
	for _, k := range fixed {
		if k != user {
			keys = append(keys, k)
		}
	}
	return keys
}
