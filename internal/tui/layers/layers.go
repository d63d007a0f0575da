// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateFloatingLayer places content with its top-left corner near (x, y),
// shifted back inside the screen when it would overflow an edge.
func CreateFloatingLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x = max(min(x, screenWidth-w), 0)
	y = max(min(y, screenHeight-h), 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}
