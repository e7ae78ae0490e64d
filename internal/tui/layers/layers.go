// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Returns nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// Compose stacks the overlay on top of base. A nil overlay returns base unchanged.
func Compose(base string, overlay *lipgloss.Layer) string {
	if overlay == nil {
		return base
	}
	canvas := lipgloss.NewCanvas(lipgloss.NewLayer(base), overlay.Z(1))
	return canvas.Render()
}
