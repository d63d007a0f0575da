package drag

import "github.com/thenoetrevino/tablero/internal/models"

// Session is the ephemeral state of the gesture in progress.
// The zero value is the idle session.
type Session struct {
	active Subject
}

// Active reports whether a drag is in progress
func (s Session) Active() bool {
	return s.active != nil
}

// Kind returns what is being dragged, KindNone when idle
func (s Session) Kind() Kind {
	if s.active == nil {
		return KindNone
	}
	return s.active.Kind()
}

// Subject returns the dragged subject, nil when idle
func (s Session) Subject() Subject {
	return s.active
}

// ActiveColumn returns the dragged column snapshot
func (s Session) ActiveColumn() (models.Column, bool) {
	if c, ok := s.active.(ColumnSubject); ok {
		return c.Column, true
	}
	return models.Column{}, false
}

// ActiveTask returns the dragged task snapshot
func (s Session) ActiveTask() (models.Task, bool) {
	if t, ok := s.active.(TaskSubject); ok {
		return t.Task, true
	}
	return models.Task{}, false
}
