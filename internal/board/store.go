// Package board owns the board state: the ordered column sequence and the
// flat ordered task sequence.
//
// The Store is the only writer. Every operation is total: an id that no
// longer exists turns the call into a silent no-op, because stale references
// are a normal result of quick successive pointer and key events in the UI.
// Mutations never write into an existing slice; each commit builds new
// slices so snapshots handed to observers stay valid.
package board

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/tablero/internal/ids"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Observer is called with a snapshot after every committed mutation
type Observer func(snapshot models.Board)

// Store is the single source of truth for a board
type Store struct {
	mu        sync.Mutex
	columns   []models.Column
	tasks     []models.Task
	ids       ids.Generator
	observers map[int]Observer
	nextObs   int
}

// NewStore creates a store seeded with initial (usually loaded from disk).
// The generator is owned by the store from here on.
func NewStore(gen ids.Generator, initial models.Board) *Store {
	b := initial.Clone()
	return &Store{
		columns:   b.Columns,
		tasks:     b.Tasks,
		ids:       gen,
		observers: make(map[int]Observer),
	}
}

// Subscribe registers an observer and returns a function that removes it
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Snapshot returns a copy of the current board
func (s *Store) Snapshot() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Columns returns a copy of the column sequence
func (s *Store) Columns() []models.Column {
	return s.Snapshot().Columns
}

// Tasks returns a copy of the flat task sequence
func (s *Store) Tasks() []models.Task {
	return s.Snapshot().Tasks
}

// TasksInColumn returns a column's tasks in display order
func (s *Store) TasksInColumn(columnID types.ID) []models.Task {
	return s.Snapshot().TasksInColumn(columnID)
}

// Column looks up a column by id
func (s *Store) Column(id types.ID) (models.Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfColumn(s.columns, id)
	if idx < 0 {
		return models.Column{}, false
	}
	return s.columns[idx], true
}

// Task looks up a task by id
func (s *Store) Task(id types.ID) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfTask(s.tasks, id)
	if idx < 0 {
		return models.Task{}, false
	}
	return s.tasks[idx], true
}

// ColumnIndex returns the column's position, or -1 if it does not exist
func (s *Store) ColumnIndex(id types.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfColumn(s.columns, id)
}

// TaskIndex returns the task's position in the flat sequence, or -1
func (s *Store) TaskIndex(id types.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfTask(s.tasks, id)
}

// AddColumn appends a column titled "Column N" where N is the new count
func (s *Store) AddColumn() models.Column {
	s.mu.Lock()
	col := models.Column{
		ID:    s.ids.Next(),
		Title: fmt.Sprintf("Column %d", len(s.columns)+1),
	}
	s.columns = appendColumn(s.columns, col)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("column added", "column_id", col.ID)
	s.notify(snap)
	return col
}

// RemoveColumn deletes a column together with every task assigned to it
func (s *Store) RemoveColumn(id types.ID) {
	s.mu.Lock()
	idx := indexOfColumn(s.columns, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	columns := make([]models.Column, 0, len(s.columns)-1)
	columns = append(columns, s.columns[:idx]...)
	columns = append(columns, s.columns[idx+1:]...)

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ColumnID != id {
			tasks = append(tasks, task)
		}
	}

	removed := len(s.tasks) - len(tasks)
	s.columns, s.tasks = columns, tasks
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("column removed", "column_id", id, "tasks_removed", removed)
	s.notify(snap)
}

// RenameColumn replaces a column's title
func (s *Store) RenameColumn(id types.ID, title string) {
	s.mu.Lock()
	idx := indexOfColumn(s.columns, id)
	if idx < 0 || s.columns[idx].Title == title {
		s.mu.Unlock()
		return
	}

	columns := make([]models.Column, len(s.columns))
	copy(columns, s.columns)
	columns[idx] = models.Column{ID: id, Title: title}
	s.columns = columns
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// AddTask appends a task titled "Task N" (N is the new total task count)
// to the end of the flat sequence. columnID is not validated; callers pass
// ids of existing columns.
func (s *Store) AddTask(columnID types.ID) models.Task {
	s.mu.Lock()
	task := models.Task{
		ID:       s.ids.Next(),
		ColumnID: columnID,
		Content:  fmt.Sprintf("Task %d", len(s.tasks)+1),
	}
	tasks := make([]models.Task, len(s.tasks), len(s.tasks)+1)
	copy(tasks, s.tasks)
	s.tasks = append(tasks, task)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("task added", "task_id", task.ID, "column_id", columnID)
	s.notify(snap)
	return task
}

// RemoveTask deletes a task
func (s *Store) RemoveTask(id types.ID) {
	s.mu.Lock()
	idx := indexOfTask(s.tasks, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	tasks := make([]models.Task, 0, len(s.tasks)-1)
	tasks = append(tasks, s.tasks[:idx]...)
	tasks = append(tasks, s.tasks[idx+1:]...)
	s.tasks = tasks
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// EditTask replaces a task's content
func (s *Store) EditTask(id types.ID, content string) {
	s.mu.Lock()
	idx := indexOfTask(s.tasks, id)
	if idx < 0 || s.tasks[idx].Content == content {
		s.mu.Unlock()
		return
	}

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	tasks[idx] = models.Task{ID: id, ColumnID: tasks[idx].ColumnID, Content: content}
	s.tasks = tasks
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ReorderColumns moves the column at fromIndex to toIndex, shifting the
// columns in between. Indices outside the sequence are clamped to it.
func (s *Store) ReorderColumns(fromIndex, toIndex int) {
	s.mu.Lock()
	columns, changed := move(s.columns, fromIndex, toIndex)
	if !changed {
		s.mu.Unlock()
		return
	}
	s.columns = columns
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("columns reordered", "from", fromIndex, "to", toIndex)
	s.notify(snap)
}

// ReassignAndReorderTask assigns a task to newColumnID and moves it to
// newIndex in the flat task sequence. It covers both moving inside a column
// (same column id) and moving across columns. newIndex is clamped.
func (s *Store) ReassignAndReorderTask(taskID, newColumnID types.ID, newIndex int) {
	s.mu.Lock()
	idx := indexOfTask(s.tasks, taskID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	current := s.tasks[idx]
	reassigned := current.ColumnID != newColumnID

	tasks, moved := move(s.tasks, idx, newIndex)
	if !reassigned && !moved {
		s.mu.Unlock()
		return
	}
	pos := idx
	if moved {
		pos = clamp(newIndex, len(tasks))
	} else {
		tasks = make([]models.Task, len(s.tasks))
		copy(tasks, s.tasks)
	}
	// tasks is a fresh slice here, so replacing the element leaves the
	// previous sequence (and any snapshot of it) untouched.
	tasks[pos] = models.Task{ID: current.ID, ColumnID: newColumnID, Content: current.Content}
	s.tasks = tasks
	snap := s.snapshotLocked()
	s.mu.Unlock()

	slog.Debug("task moved",
		"task_id", taskID,
		"from_column", current.ColumnID,
		"to_column", newColumnID,
		"index", newIndex)
	s.notify(snap)
}

func (s *Store) snapshotLocked() models.Board {
	return models.Board{Columns: s.columns, Tasks: s.tasks}.Clone()
}

// notify runs outside the lock so observers may read the store
func (s *Store) notify(snap models.Board) {
	s.mu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for i := 0; i < s.nextObs; i++ {
		if fn, ok := s.observers[i]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
