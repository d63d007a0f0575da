package tui

import (
	"image"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/types"
)

const (
	boardTop       = 1 // the title bar sits above the board
	minBoardHeight = 8
)

// hitKind classifies what is under a screen cell
type hitKind int

const (
	hitNone      hitKind = iota
	hitColumn            // column body, outside any card or button
	hitHeader            // column title row; grabbing it drags the column
	hitTask              // a task card
	hitAddTask           // the "+ add task" row of a column
	hitAddColumn         // the "[+ column]" button
)

// hit is the result of hit-testing one cell
type hit struct {
	kind   hitKind
	column types.ID
	task   types.ID
}

type columnRegion struct {
	id       types.ID
	rendered string
	bounds   image.Rectangle
	header   image.Rectangle
	addTask  image.Rectangle
	cards    []components.CardRegion
}

// layout is the rendered board plus the screen regions the pointer can hit.
// Rectangles are absolute screen coordinates.
type layout struct {
	columns   []columnRegion
	addColumn image.Rectangle
	// visibleColumns is how many columns fit side by side
	visibleColumns int
	boardHeight    int
}

// hitTest maps a screen cell to what was drawn there
func (l layout) hitTest(p image.Point) hit {
	if p.In(l.addColumn) {
		return hit{kind: hitAddColumn}
	}
	for _, col := range l.columns {
		if !p.In(col.bounds) {
			continue
		}
		if p.In(col.header) {
			return hit{kind: hitHeader, column: col.id}
		}
		for _, card := range col.cards {
			if p.In(card.Bounds) {
				return hit{kind: hitTask, column: col.id, task: card.TaskID}
			}
		}
		if p.In(col.addTask) {
			return hit{kind: hitAddTask, column: col.id}
		}
		return hit{kind: hitColumn, column: col.id}
	}
	return hit{}
}

// column returns the region of a visible column
func (l layout) column(id types.ID) (columnRegion, bool) {
	for _, col := range l.columns {
		if col.id == id {
			return col, true
		}
	}
	return columnRegion{}, false
}

// visibleTasks returns the tasks of a column that pass the search filter
func (m *Model) visibleTasks(snapshot models.Board, columnID types.ID) []models.Task {
	return m.search.Filter(snapshot.TasksInColumn(columnID))
}

// relayout renders every visible column and records where things landed.
// It runs after each Update so hit-testing always matches what is on screen.
func (m *Model) relayout() {
	snapshot := m.store.Snapshot()
	m.normalizeSelection(snapshot)

	width := m.ui.Width()
	boardHeight := max(m.ui.Height()-2, minBoardHeight)
	visible := max((width+components.ColumnGap)/(components.ColumnWidth+components.ColumnGap), 1)

	session := m.controller.Session()
	draggedColumn, _ := session.ActiveColumn()
	draggedTask, _ := session.ActiveTask()

	if idx := snapshot.ColumnIndex(m.ui.SelectedColumn()); idx >= 0 && !session.Active() {
		m.ui.EnsureVisible(idx, visible, len(snapshot.Columns))
	} else {
		m.ui.EnsureVisible(m.ui.ViewportOffset(), visible, len(snapshot.Columns))
	}
	offset := m.ui.ViewportOffset()
	end := min(offset+visible, len(snapshot.Columns))

	l := layout{visibleColumns: visible, boardHeight: boardHeight}
	x := 0
	for _, col := range snapshot.Columns[offset:end] {
		tasks := m.visibleTasks(snapshot, col.ID)

		if col.ID == m.ui.SelectedColumn() {
			m.scrollToSelectedTask(col.ID, tasks, boardHeight)
		}

		view := components.RenderColumn(components.ColumnProps{
			Column:       col,
			Tasks:        tasks,
			Total:        snapshot.TaskCount(col.ID),
			Height:       boardHeight,
			Selected:     col.ID == m.ui.SelectedColumn(),
			SelectedTask: m.ui.SelectedTask(),
			DraggedTask:  draggedTask.ID,
			Dimmed:       col.ID == draggedColumn.ID && session.Active(),
			ScrollOffset: m.ui.TaskScrollOffset(col.ID),
		})

		origin := image.Pt(x, boardTop)
		region := columnRegion{
			id:       col.ID,
			rendered: view.Rendered,
			bounds:   view.Bounds.Add(origin),
			header:   view.Header.Add(origin),
			addTask:  view.AddTask.Add(origin),
		}
		for _, card := range view.Cards {
			region.cards = append(region.cards, components.CardRegion{
				TaskID: card.TaskID,
				Bounds: card.Bounds.Add(origin),
			})
		}
		l.columns = append(l.columns, region)
		x += view.Bounds.Dx() + components.ColumnGap
	}

	// The add button follows the last column once it is on screen
	if end == len(snapshot.Columns) {
		button := components.RenderAddColumnButton()
		bx := x + 1
		if bx+lipgloss.Width(button) > width && width > 0 {
			bx = max(width-lipgloss.Width(button), 0)
		}
		l.addColumn = image.Rect(bx, boardTop+1, bx+lipgloss.Width(button), boardTop+2)
	}

	m.layout = l
}

// scrollToSelectedTask keeps the selected card inside its column's window
func (m *Model) scrollToSelectedTask(columnID types.ID, tasks []models.Task, boardHeight int) {
	visible := components.MaxVisibleCards(boardHeight, len(tasks))
	m.ui.ScrollTasks(columnID, 0, len(tasks)-visible)
	for i, task := range tasks {
		if task.ID == m.ui.SelectedTask() {
			m.ui.EnsureTaskVisible(columnID, i, visible)
			return
		}
	}
}

// normalizeSelection drops selections that point at removed or hidden items
func (m *Model) normalizeSelection(snapshot models.Board) {
	colID := m.ui.SelectedColumn()
	if snapshot.ColumnIndex(colID) < 0 {
		if len(snapshot.Columns) == 0 {
			m.ui.SelectColumn(types.None)
			return
		}
		m.ui.SelectColumn(snapshot.Columns[0].ID)
		return
	}

	taskID := m.ui.SelectedTask()
	if taskID == types.None {
		return
	}
	idx := snapshot.TaskIndex(taskID)
	if idx < 0 {
		m.ui.SelectColumn(colID)
		return
	}
	task := snapshot.Tasks[idx]
	if matches := m.search.Matches(snapshot.Tasks); matches != nil && !matches[taskID] {
		m.ui.SelectColumn(colID)
		return
	}
	// the task may have been dragged into another column
	m.ui.SelectTask(task.ColumnID, task.ID)
}
