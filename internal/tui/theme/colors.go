// Package theme holds the active colors for the TUI.
package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	DragBorder     string
	Title          string
	Subtle         string
	Normal         string
	WarningFg      string
	WarningBg      string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	DragBorder = colors.DragBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
}
