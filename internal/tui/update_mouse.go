package tui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// handleMouse feeds pointer events to the drag sensor.
// Presses on a column header or a card arm a drag; everything else is a
// plain click, resolved on release.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	mouse := msg.Mouse()
	p := image.Pt(mouse.X, mouse.Y)
	at := drag.Point{X: mouse.X, Y: mouse.Y}

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return
		}
		m.press = m.layout.hitTest(p)
		m.sensor.Press(at, m.dragSubject(m.press))

	case tea.MouseMotionMsg:
		m.sensor.Move(at, m.overSubject(m.layout.hitTest(p)))

	case tea.MouseReleaseMsg:
		released := m.layout.hitTest(p)
		press := m.press
		m.press = hit{}

		switch m.sensor.Release(at, m.overSubject(released)) {
		case drag.OutcomeDrop:
			m.selectHit(press)
		case drag.OutcomeClick:
			m.click(press)
		case drag.OutcomeNone:
			if released == press {
				m.click(press)
			}
		}

	case tea.MouseWheelMsg:
		h := m.layout.hitTest(p)
		if h.kind == hitNone || h.kind == hitAddColumn {
			return
		}
		delta := 1
		if mouse.Button == tea.MouseWheelUp {
			delta = -1
		}
		tasks := m.visibleTasks(m.store.Snapshot(), h.column)
		maxOffset := len(tasks) - components.MaxVisibleCards(m.layout.boardHeight, len(tasks))
		m.ui.ScrollTasks(h.column, delta, maxOffset)
	}
}

// dragSubject returns what a press on h would drag, nil for nothing
func (m *Model) dragSubject(h hit) drag.Subject {
	switch h.kind {
	case hitHeader:
		if col, ok := m.store.Column(h.column); ok {
			return drag.ColumnSubject{Column: col}
		}
	case hitTask:
		if task, ok := m.store.Task(h.task); ok {
			return drag.TaskSubject{Task: task}
		}
	}
	return nil
}

// overSubject returns the drop target under the pointer. Anywhere inside
// a column that is not a card counts as the column itself.
func (m *Model) overSubject(h hit) drag.Subject {
	switch h.kind {
	case hitTask:
		if task, ok := m.store.Task(h.task); ok {
			return drag.TaskSubject{Task: task}
		}
	case hitHeader, hitColumn, hitAddTask:
		if col, ok := m.store.Column(h.column); ok {
			return drag.ColumnSubject{Column: col}
		}
	}
	return nil
}

// click performs the action of a click on h
func (m *Model) click(h hit) {
	switch h.kind {
	case hitAddColumn:
		col := m.store.AddColumn()
		m.ui.SelectColumn(col.ID)
	case hitAddTask:
		m.addTask(h.column)
	default:
		m.selectHit(h)
	}
}

// selectHit moves the selection to the column or card under h.
// A dropped task may have changed column, so the store is asked where it is.
func (m *Model) selectHit(h hit) {
	switch h.kind {
	case hitTask:
		if task, ok := m.store.Task(h.task); ok {
			m.ui.SelectTask(task.ColumnID, task.ID)
		}
	case hitHeader, hitColumn, hitAddTask:
		if _, ok := m.store.Column(h.column); ok {
			m.ui.SelectColumn(h.column)
		}
	}
}
