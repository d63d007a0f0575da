package models

import "github.com/thenoetrevino/tablero/internal/types"

// Task represents a single task in the kanban board.
// A task's order inside its column is its position in the board's flat task
// slice, filtered by ColumnID.
type Task struct {
	ID       types.ID `json:"id"`
	ColumnID types.ID `json:"columnId"`
	Content  string   `json:"content"`
}
