package components

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ColumnProps is everything RenderColumn needs to draw one column
type ColumnProps struct {
	Column       models.Column
	Tasks        []models.Task // visible tasks in display order
	Total        int           // task count before any search filter
	Height       int           // outer height
	Selected     bool
	SelectedTask types.ID
	DraggedTask  types.ID
	Dimmed       bool // the column itself is being dragged
	ScrollOffset int  // index into Tasks of the first visible card
}

// CardRegion is where one task card was drawn
type CardRegion struct {
	TaskID types.ID
	Bounds image.Rectangle
}

// ColumnView is a rendered column plus the regions a pointer can hit.
// All rectangles are relative to the column's top-left corner.
type ColumnView struct {
	Rendered string
	Bounds   image.Rectangle
	Header   image.Rectangle
	Cards    []CardRegion
	AddTask  image.Rectangle
}

// MaxVisibleCards returns how many cards fit in a column of the given outer height
func MaxVisibleCards(height, taskCount int) int {
	// header line and add-task line
	available := height - columnFrameY - 2
	if taskCount*cardHeight <= available {
		return taskCount
	}
	// leave room for the two scroll indicators
	return max((available-2)/cardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Title} ({count})
//	▲ n more (if scrolled down)
//	{Task 1}
//	{Task 2}
//	▼ n more (if more tasks below)
//	+ add task
func RenderColumn(props ColumnProps) ColumnView {
	innerWidth := ColumnWidth - columnFrameX
	innerHeight := max(props.Height-columnFrameY, 2)
	left := columnFrameX / 2
	top := columnFrameY / 2

	var lines []string
	var cards []CardRegion
	y := top

	lines = append(lines, renderHeader(props, innerWidth))
	y++

	visible := MaxVisibleCards(props.Height, len(props.Tasks))
	offset := min(max(props.ScrollOffset, 0), max(len(props.Tasks)-visible, 0))
	overflow := visible < len(props.Tasks)

	if overflow {
		indicator := ""
		if offset > 0 {
			indicator = fmt.Sprintf("▲ %d more", offset)
		}
		lines = append(lines, SubtleStyle.Render(indicator))
		y++
	}

	for _, task := range props.Tasks[offset : offset+visible] {
		state := CardNormal
		switch task.ID {
		case props.DraggedTask:
			state = CardDragging
		case props.SelectedTask:
			state = CardSelected
		}
		card := RenderTask(task, innerWidth, state)
		h := lipgloss.Height(card)
		cards = append(cards, CardRegion{
			TaskID: task.ID,
			Bounds: image.Rect(left, y, left+innerWidth, y+h),
		})
		lines = append(lines, card)
		y += h
	}

	if overflow {
		indicator := ""
		if below := len(props.Tasks) - offset - visible; below > 0 {
			indicator = fmt.Sprintf("▼ %d more", below)
		}
		lines = append(lines, SubtleStyle.Render(indicator))
		y++
	}

	lines = append(lines, ButtonStyle.Render(AddTaskLabel))
	addTask := image.Rect(left, y, left+innerWidth, y+1)

	content := lipgloss.Place(innerWidth, innerHeight, lipgloss.Left, lipgloss.Top,
		strings.Join(lines, "\n"))

	style := ColumnStyle
	switch {
	case props.Dimmed:
		style = style.
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Faint(true)
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	rendered := style.Render(content)

	return ColumnView{
		Rendered: rendered,
		Bounds:   image.Rect(0, 0, lipgloss.Width(rendered), lipgloss.Height(rendered)),
		// the top border row grabs the column too
		Header:  image.Rect(0, 0, lipgloss.Width(rendered), top+1),
		Cards:   cards,
		AddTask: addTask,
	}
}

func renderHeader(props ColumnProps, width int) string {
	count := fmt.Sprintf(" (%d)", props.Total)
	if len(props.Tasks) != props.Total {
		count = fmt.Sprintf(" (%d/%d)", len(props.Tasks), props.Total)
	}

	title := props.Column.Title
	titleStyle := TitleStyle
	if title == "" {
		title = "untitled"
		titleStyle = titleStyle.Italic(true).Foreground(lipgloss.Color(theme.Subtle))
	}
	title = ansi.Truncate(title, max(width-lipgloss.Width(count), 1), "…")

	return titleStyle.Render(title) + SubtleStyle.Render(count)
}

// RenderColumnHeader renders the floating header shown while a column is dragged
func RenderColumnHeader(column models.Column, taskCount int) string {
	props := ColumnProps{Column: column, Total: taskCount}
	return ColumnStyle.
		BorderForeground(lipgloss.Color(theme.DragBorder)).
		BorderStyle(lipgloss.ThickBorder()).
		Render(lipgloss.PlaceHorizontal(ColumnWidth-columnFrameX, lipgloss.Left,
			renderHeader(props, ColumnWidth-columnFrameX)))
}

// RenderAddColumnButton renders the button placed after the last column
func RenderAddColumnButton() string {
	return ButtonStyle.Bold(true).Render(AddColumnLabel)
}
