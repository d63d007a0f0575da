package components

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// CardState selects how a task card is drawn
type CardState int

const (
	CardNormal   CardState = iota
	CardSelected           // keyboard or click selection
	CardDragging           // the card being dragged, left in place
	CardFloating           // the copy that follows the pointer
)

// RenderTask renders a single task as a one-line card of the given outer width
//
//	╭──────────────────────────╮
//	│ {content}                │
//	╰──────────────────────────╯
func RenderTask(task models.Task, width int, state CardState) string {
	textWidth := max(width-cardFrameX, 1)

	text := task.Content
	textStyle := lipgloss.NewStyle()
	if text == "" {
		text = "untitled"
		textStyle = textStyle.Foreground(lipgloss.Color(theme.Subtle)).Italic(true)
	}
	text = ansi.Truncate(text, textWidth, "…")
	line := lipgloss.PlaceHorizontal(textWidth, lipgloss.Left, textStyle.Render(text))

	style := TaskStyle
	switch state {
	case CardSelected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	case CardDragging:
		style = style.
			BorderForeground(lipgloss.Color(theme.DragBorder)).
			Bold(true)
	case CardFloating:
		style = style.
			BorderForeground(lipgloss.Color(theme.DragBorder)).
			BorderStyle(lipgloss.ThickBorder())
	}

	return style.Render(line)
}
