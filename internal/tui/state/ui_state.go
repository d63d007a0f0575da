// Package state holds the TUI's view state. Board data itself lives in the
// board store; nothing here is persisted.
package state

import "github.com/thenoetrevino/tablero/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation and mouse mode
	RenameColumnMode                    // Renaming a column with a huh input
	EditTaskMode                        // Editing a task's content with a huh input
	DeleteColumnConfirmMode             // Confirming column deletion
	SearchMode                          // Typing a search query (/)
	HelpMode                            // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case RenameColumnMode:
		return "rename-column"
	case EditTaskMode:
		return "edit-task"
	case DeleteColumnConfirmMode:
		return "delete-column"
	case SearchMode:
		return "search"
	case HelpMode:
		return "help"
	default:
		return "normal"
	}
}

// UIState manages the user interface state: selection, terminal size,
// horizontal viewport and per-column scrolling.
//
// Selection is tracked by id so it follows a column or task when the board
// is reordered underneath it.
type UIState struct {
	mode Mode

	selectedColumn types.ID
	selectedTask   types.ID

	width  int
	height int

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// taskScrollOffsets is the first visible card per column
	taskScrollOffsets map[types.ID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[types.ID]int),
	}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SelectedColumn returns the selected column id (None if nothing is selected)
func (s *UIState) SelectedColumn() types.ID { return s.selectedColumn }

// SelectedTask returns the selected task id (None if no task is selected)
func (s *UIState) SelectedTask() types.ID { return s.selectedTask }

// SelectColumn selects a column and clears the task selection
func (s *UIState) SelectColumn(id types.ID) {
	s.selectedColumn = id
	s.selectedTask = types.None
}

// SelectTask selects a task inside its column
func (s *UIState) SelectTask(columnID, taskID types.ID) {
	s.selectedColumn = columnID
	s.selectedTask = taskID
}

// ViewportOffset returns the index of the leftmost visible column
func (s *UIState) ViewportOffset() int { return s.viewportOffset }

// EnsureVisible scrolls the viewport so column index idx is inside a
// window of size visible, given count columns in total.
func (s *UIState) EnsureVisible(idx, visible, count int) {
	visible = max(visible, 1)
	if idx < s.viewportOffset {
		s.viewportOffset = idx
	}
	if idx >= s.viewportOffset+visible {
		s.viewportOffset = idx - visible + 1
	}
	s.viewportOffset = min(s.viewportOffset, max(count-visible, 0))
	s.viewportOffset = max(s.viewportOffset, 0)
}

// TaskScrollOffset returns the first visible card index for a column
func (s *UIState) TaskScrollOffset(columnID types.ID) int {
	return s.taskScrollOffsets[columnID]
}

// EnsureTaskVisible scrolls a column so card index idx is inside a window of
// size visible
func (s *UIState) EnsureTaskVisible(columnID types.ID, idx, visible int) {
	offset := s.taskScrollOffsets[columnID]
	visible = max(visible, 1)
	if idx < offset {
		offset = idx
	}
	if idx >= offset+visible {
		offset = idx - visible + 1
	}
	s.taskScrollOffsets[columnID] = max(offset, 0)
}

// ScrollTasks moves a column's scroll offset by delta, clamped to [0, maxOffset]
func (s *UIState) ScrollTasks(columnID types.ID, delta, maxOffset int) {
	offset := s.taskScrollOffsets[columnID] + delta
	s.taskScrollOffsets[columnID] = min(max(offset, 0), max(maxOffset, 0))
}
