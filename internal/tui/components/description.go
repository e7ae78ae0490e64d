package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/lista/internal/tui/theme"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width.
// The standard dark style is used because auto-detection queries the terminal,
// which races with Bubble Tea for stdin.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders markdown for an expanded card
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return noDescription()
	}

	renderer, err := getRenderer(max(width, 10))
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return wordwrap.String(description, width)
}

// DescriptionPreview is the first maxLines wrapped lines of the description's first paragraph
func DescriptionPreview(description string, width, maxLines int) string {
	first, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	if first == "" {
		return ""
	}

	lines := strings.Split(wordwrap.String(first, max(width, 10)), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = strings.TrimRight(lines[maxLines-1], " ") + "…"
	}
	return strings.Join(lines, "\n")
}

func noDescription() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No description")
}
