package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderInline renders a compact one-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	icon := "•"
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if severity == Warning {
		icon = "⚠"
		style = style.
			Foreground(lipgloss.Color(theme.WarningFg)).
			Background(lipgloss.Color(theme.WarningBg))
	}

	return style.Padding(0, 1).Render(icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return RenderInline(Warning, n.Message)
	default:
		return RenderInline(Info, n.Message)
	}
}
