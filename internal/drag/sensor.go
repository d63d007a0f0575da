package drag

import (
	"fmt"
	"math"
)

// Point is a pointer position in terminal cells
type Point struct {
	X, Y int
}

// Outcome is what a pointer release turned out to be
type Outcome int

const (
	// OutcomeNone means no gesture was in progress
	OutcomeNone Outcome = iota
	// OutcomeClick means the pointer never travelled the activation distance
	OutcomeClick
	// OutcomeDrop means a drag ended
	OutcomeDrop
)

// PointerSensor recognises drags in a stream of pointer events.
//
// A press arms the sensor; the drag only starts once the pointer has moved
// at least the activation distance from where it was pressed, so clicks
// never reorder anything. Over events are forwarded only when the target
// under the pointer changes.
type PointerSensor struct {
	controller *Controller
	activation float64

	pressed  bool
	dragging bool
	origin   Point
	pointer  Point
	pending  Subject
	lastOver Subject
	overSent bool
}

// NewPointerSensor creates a sensor in front of controller.
// activationDistance is measured in cells and must be at least 1.
func NewPointerSensor(controller *Controller, activationDistance int) (*PointerSensor, error) {
	if activationDistance < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidActivationDistance, activationDistance)
	}
	return &PointerSensor{
		controller: controller,
		activation: float64(activationDistance),
	}, nil
}

// Press records a pointer press on subject. Pressing on nothing is ignored.
func (p *PointerSensor) Press(at Point, subject Subject) {
	if p.dragging {
		// The release was lost; end the old drag where it stands.
		p.controller.DragEnd(Event{Active: p.pending, Over: nil})
	}
	p.reset()
	if subject == nil {
		return
	}
	p.pressed = true
	p.origin = at
	p.pointer = at
	p.pending = subject
}

// Move handles pointer motion with over as the target under the pointer
func (p *PointerSensor) Move(at Point, over Subject) {
	if !p.pressed {
		return
	}
	p.pointer = at

	if !p.dragging {
		if distance(p.origin, at) < p.activation {
			return
		}
		p.dragging = true
		p.controller.DragStart(p.pending)
	}

	if p.overSent && sameTarget(p.lastOver, over) {
		return
	}
	p.lastOver = over
	p.overSent = true
	p.controller.DragOver(Event{Active: p.pending, Over: over})
}

// Release ends the gesture with over as the drop target
func (p *PointerSensor) Release(at Point, over Subject) Outcome {
	defer p.reset()

	if !p.pressed {
		return OutcomeNone
	}
	if !p.dragging {
		return OutcomeClick
	}

	p.pointer = at
	p.controller.DragEnd(Event{Active: p.pending, Over: over})
	return OutcomeDrop
}

// Cancel abandons the gesture with no board change
func (p *PointerSensor) Cancel() {
	if p.dragging {
		p.controller.Cancel()
	}
	p.reset()
}

// Dragging reports whether the activation distance has been crossed
func (p *PointerSensor) Dragging() bool {
	return p.dragging
}

// Pointer returns the last known pointer position
func (p *PointerSensor) Pointer() Point {
	return p.pointer
}

func (p *PointerSensor) reset() {
	p.pressed = false
	p.dragging = false
	p.pending = nil
	p.lastOver = nil
	p.overSent = false
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
