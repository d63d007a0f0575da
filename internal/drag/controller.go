package drag

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Board is the part of the board store the controller reads and mutates
type Board interface {
	Column(id types.ID) (models.Column, bool)
	Task(id types.ID) (models.Task, bool)
	ColumnIndex(id types.ID) int
	TaskIndex(id types.ID) int
	ReorderColumns(fromIndex, toIndex int)
	ReassignAndReorderTask(taskID, newColumnID types.ID, newIndex int)
}

// Controller is the drag state machine: Idle -> Dragging(kind) -> Idle.
//
// Task drags are resolved incrementally on every over event, so the board
// shows the live result while the pointer moves and every intermediate
// state is a valid board. Column drags only commit on drop.
type Controller struct {
	board   Board
	session Session
}

// NewController creates an idle controller bound to a board
func NewController(board Board) *Controller {
	return &Controller{board: board}
}

// Session returns the current session
func (c *Controller) Session() Session {
	return c.session
}

// DragStart begins a drag of subject. A start while another drag is still
// open ends that drag first, without any further mutation.
func (c *Controller) DragStart(subject Subject) {
	if subject == nil {
		return
	}
	if c.session.Active() {
		slog.Debug("drag started while dragging, ending previous drag",
			"previous_kind", c.session.Kind(),
			"previous_id", c.session.active.ID())
		c.session = Session{}
	}

	c.session = Session{active: subject}
	slog.Debug("drag started", "kind", subject.Kind(), "id", subject.ID())
}

// DragOver handles the pointer moving above a target during a drag
func (c *Controller) DragOver(ev Event) {
	if !c.session.Active() || ev.Active == nil || ev.Over == nil {
		return
	}
	if ev.Active.ID() == ev.Over.ID() {
		return
	}

	switch ev.Active.(type) {
	case ColumnSubject:
		// Columns are reordered on drop only.
		return
	case TaskSubject:
		c.taskOver(ev.Active.ID(), ev.Over)
	}
}

func (c *Controller) taskOver(activeID types.ID, over Subject) {
	activeIdx := c.board.TaskIndex(activeID)
	if activeIdx < 0 {
		return
	}

	switch o := over.(type) {
	case TaskSubject:
		overIdx := c.board.TaskIndex(o.Task.ID)
		overTask, ok := c.board.Task(o.Task.ID)
		if overIdx < 0 || !ok {
			return
		}
		c.board.ReassignAndReorderTask(activeID, overTask.ColumnID, overIdx)
	case ColumnSubject:
		if c.board.ColumnIndex(o.Column.ID) < 0 {
			return
		}
		c.board.ReassignAndReorderTask(activeID, o.Column.ID, activeIdx)
	}
}

// DragEnd finishes the drag. The session is cleared whatever the outcome.
func (c *Controller) DragEnd(ev Event) {
	c.session = Session{}

	if ev.Active == nil || ev.Over == nil {
		return
	}
	if ev.Active.ID() == ev.Over.ID() {
		return
	}

	switch ev.Active.(type) {
	case ColumnSubject:
		c.dropColumn(ev.Active.ID(), ev.Over)
	case TaskSubject:
		// Already placed by the over events.
	}
}

func (c *Controller) dropColumn(activeID types.ID, over Subject) {
	var overColumnID types.ID
	switch o := over.(type) {
	case ColumnSubject:
		overColumnID = o.Column.ID
	case TaskSubject:
		task, ok := c.board.Task(o.Task.ID)
		if !ok {
			return
		}
		overColumnID = task.ColumnID
	}

	from := c.board.ColumnIndex(activeID)
	to := c.board.ColumnIndex(overColumnID)
	if from < 0 || to < 0 || from == to {
		return
	}

	slog.Debug("column dropped", "column_id", activeID, "from", from, "to", to)
	c.board.ReorderColumns(from, to)
}

// Cancel clears the session without touching the board
func (c *Controller) Cancel() {
	c.session = Session{}
}
