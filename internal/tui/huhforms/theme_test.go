package huhforms

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/lista/internal/config"
)

func TestDialogPalette_FrameFollowsMode(t *testing.T) {
	scheme := config.DefaultColorScheme()

	assert.Equal(t, scheme.Create, newDialogPalette(scheme, false).frame)
	assert.Equal(t, scheme.Edit, newDialogPalette(scheme, true).frame)
	assert.Equal(t, scheme.Delete, newDialogPalette(scheme, true).errorFg)
}

func TestDialogTheme(t *testing.T) {
	styles := DialogTheme(config.DefaultColorScheme(), true).Theme(true)
	assert.NotNil(t, styles)
}

func TestDialogKeyMap_UsesTaskNavigationKeys(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.PrevTask = "i"
	km.NextTask = "n"

	keymap := DialogKeyMap(km)

	press := func(s string) tea.KeyPressMsg {
		return tea.KeyPressMsg(tea.Key{Text: s, Code: []rune(s)[0]})
	}
	assert.True(t, key.Matches(press("i"), keymap.Select.Up))
	assert.True(t, key.Matches(press("n"), keymap.Select.Down))
	assert.True(t, key.Matches(tea.KeyPressMsg(tea.Key{Code: tea.KeyUp}), keymap.Select.Up))
	assert.False(t, key.Matches(press("k"), keymap.Select.Up))
	assert.Contains(t, keymap.Text.NewLine.Keys(), "shift+enter")
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, []string{"k", "up"}, withDefaults("k", "up"))
	assert.Equal(t, []string{"up"}, withDefaults("", "up"))
	assert.Equal(t, []string{"up", "ctrl+p"}, withDefaults("up", "up", "ctrl+p"))
}
