package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderStatusBar renders the bottom line: left-aligned content with an
// optional right-aligned part, cut to width. The right part wins when
// both do not fit.
func RenderStatusBar(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	if rightWidth >= width {
		return ansi.Truncate(right, width, "…")
	}
	if lipgloss.Width(left)+rightWidth >= width {
		left = ansi.Truncate(left, width-rightWidth-1, "…")
	}
	gap := width - lipgloss.Width(left) - rightWidth
	return StatusBarStyle.Render(left) + strings.Repeat(" ", gap) + right
}

// RenderTitleBar renders the top line with the application name and,
// when a search filter is applied, the query.
func RenderTitleBar(query string, width int) string {
	title := TitleStyle.Render("tablero")
	if query != "" {
		title += SubtleStyle.Render("  /" + query)
	}
	return ansi.Truncate(title, width, "…")
}
