package models

import "github.com/thenoetrevino/tablero/internal/types"

// Board is the complete set of columns and tasks, the unit of persistence.
// Tasks are a single flat ordered sequence; a column's visible order is that
// sequence filtered by ColumnID.
type Board struct {
	Columns []Column `json:"columns"`
	Tasks   []Task   `json:"tasks"`
}

// Clone returns a copy of the board that shares no backing arrays with b.
// The returned slices are never nil.
func (b Board) Clone() Board {
	columns := make([]Column, len(b.Columns))
	copy(columns, b.Columns)
	tasks := make([]Task, len(b.Tasks))
	copy(tasks, b.Tasks)
	return Board{Columns: columns, Tasks: tasks}
}

// ColumnIndex returns the position of the column with the given id, or -1
func (b Board) ColumnIndex(id types.ID) int {
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// TaskIndex returns the position of the task in the flat task sequence, or -1
func (b Board) TaskIndex(id types.ID) int {
	for i, task := range b.Tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// TasksInColumn returns the tasks of a column in display order
func (b Board) TasksInColumn(columnID types.ID) []Task {
	tasks := []Task{}
	for _, task := range b.Tasks {
		if task.ColumnID == columnID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// TaskCount returns how many tasks belong to a column
func (b Board) TaskCount(columnID types.ID) int {
	count := 0
	for _, task := range b.Tasks {
		if task.ColumnID == columnID {
			count++
		}
	}
	return count
}
