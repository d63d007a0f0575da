// Package drag turns pointer-drag gestures into board mutations.
//
// A gesture has three phases: start, a stream of over events, and end. The
// Controller classifies the dragged subject and the target under the
// pointer, and calls the board store. It never edits board state itself.
// The PointerSensor sits in front of it and decides when raw pointer
// movement counts as a drag at all.
package drag

import (
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Kind tags what a drag session is carrying
type Kind int

const (
	KindNone Kind = iota
	KindColumn
	KindTask
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindTask:
		return "task"
	default:
		return "none"
	}
}

// Subject is something that can be dragged or dragged over.
// The set of implementations is closed: ColumnSubject and TaskSubject.
type Subject interface {
	ID() types.ID
	Kind() Kind
	subject()
}

// ColumnSubject carries a column snapshot
type ColumnSubject struct {
	Column models.Column
}

func (s ColumnSubject) ID() types.ID { return s.Column.ID }
func (s ColumnSubject) Kind() Kind   { return KindColumn }
func (ColumnSubject) subject()       {}

// TaskSubject carries a task snapshot
type TaskSubject struct {
	Task models.Task
}

func (s TaskSubject) ID() types.ID { return s.Task.ID }
func (s TaskSubject) Kind() Kind   { return KindTask }
func (TaskSubject) subject()       {}

// Event describes one drag-over or drag-end notification.
// Over is nil when the pointer is not above any droppable target.
type Event struct {
	Active Subject
	Over   Subject
}

// sameTarget reports whether two (possibly nil) subjects name the same target
func sameTarget(a, b Subject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.ID() == b.ID()
}
