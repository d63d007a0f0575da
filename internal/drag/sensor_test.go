package drag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

func newSensor(t *testing.T, b *recordingBoard, distance int) (*PointerSensor, *Controller) {
	t.Helper()
	c := NewController(b)
	s, err := NewPointerSensor(c, distance)
	require.NoError(t, err)
	return s, c
}

func TestNewPointerSensor_RequiresActivationDistance(t *testing.T) {
	for _, d := range []int{0, -3} {
		_, err := NewPointerSensor(NewController(newBoard(models.Board{})), d)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidActivationDistance))
	}
}

func TestSensor_ClickBelowThreshold(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 3)

	s.Press(Point{10, 10}, task("t1", "A"))
	s.Move(Point{11, 11}, task("t3", "B"))

	assert.False(t, s.Dragging())
	assert.False(t, c.Session().Active())
	assert.Equal(t, OutcomeClick, s.Release(Point{11, 11}, task("t3", "B")))
	assert.Equal(t, twoColumnBoard(), b.Snapshot())
}

func TestSensor_DragStartsAtThreshold(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 2)

	s.Press(Point{0, 0}, task("t1", "A"))
	s.Move(Point{2, 0}, task("t1", "A"))

	assert.True(t, s.Dragging())
	assert.Equal(t, KindTask, c.Session().Kind())
}

func TestSensor_FullTaskGesture(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 1)

	s.Press(Point{0, 0}, task("t1", "A"))
	s.Move(Point{5, 0}, task("t3", "B"))
	outcome := s.Release(Point{5, 0}, task("t3", "B"))

	assert.Equal(t, OutcomeDrop, outcome)
	assert.False(t, c.Session().Active())
	moved, _ := b.Task("t1")
	assert.Equal(t, types.ID("B"), moved.ColumnID)
}

func TestSensor_OverEventsOnlyWhenTargetChanges(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, _ := newSensor(t, b, 1)

	s.Press(Point{0, 0}, task("t1", "A"))
	s.Move(Point{4, 0}, task("t3", "B"))
	s.Move(Point{5, 0}, task("t3", "B"))
	s.Move(Point{6, 0}, task("t3", "B"))

	assert.Equal(t, 1, b.reassigns)
	// Resting over the same task must not swap it back.
	assert.Equal(t, []types.ID{"t3", "t1"}, taskIDs(b.TasksInColumn("B")))
}

func TestSensor_ColumnGestureCommitsOnRelease(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, _ := newSensor(t, b, 1)

	s.Press(Point{0, 0}, col("A"))
	s.Move(Point{30, 0}, col("B"))
	assert.Zero(t, b.reorders)

	s.Release(Point{30, 0}, col("B"))
	assert.Equal(t, 1, b.reorders)
	assert.Equal(t, types.ID("B"), b.Columns()[0].ID)
}

func TestSensor_ReleaseWithoutTarget(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 1)

	s.Press(Point{0, 0}, col("A"))
	s.Move(Point{30, 0}, nil)

	assert.Equal(t, OutcomeDrop, s.Release(Point{30, 0}, nil))
	assert.False(t, c.Session().Active())
	assert.Zero(t, b.reorders)
}

func TestSensor_PressOnNothing(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, _ := newSensor(t, b, 1)

	s.Press(Point{0, 0}, nil)
	s.Move(Point{10, 0}, col("B"))

	assert.False(t, s.Dragging())
	assert.Equal(t, OutcomeNone, s.Release(Point{10, 0}, col("B")))
}

func TestSensor_Cancel(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 1)

	s.Press(Point{0, 0}, col("A"))
	s.Move(Point{30, 0}, col("B"))
	s.Cancel()

	assert.False(t, c.Session().Active())
	assert.Equal(t, OutcomeNone, s.Release(Point{30, 0}, col("B")))
	assert.Zero(t, b.reorders)
}

func TestSensor_PressDuringDragEndsIt(t *testing.T) {
	b := newBoard(twoColumnBoard())
	s, c := newSensor(t, b, 1)

	s.Press(Point{0, 0}, col("A"))
	s.Move(Point{30, 0}, col("B"))
	s.Press(Point{1, 1}, task("t1", "A"))

	assert.False(t, c.Session().Active())
	assert.Zero(t, b.reorders)
	assert.False(t, s.Dragging())
}
