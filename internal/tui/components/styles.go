// Package components provides reusable UI components and styles.
// Styles are rebuilt from the theme by InitStyles.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders and counts
	SubtleStyle lipgloss.Style

	// ButtonStyle defines the clickable add buttons
	ButtonStyle lipgloss.Style

	// FormBoxStyle wraps huh forms
	FormBoxStyle lipgloss.Style

	// DeleteBoxStyle wraps delete confirmations
	DeleteBoxStyle lipgloss.Style

	// HelpBoxStyle wraps the rendered help text
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle is the bottom line
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles initializes all style variables from the current theme.
// Call after theme.Init when the color scheme changes.
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	DeleteBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(theme.Delete))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
