package models

import "github.com/thenoetrevino/tablero/internal/types"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done")
// Columns are ordered by their position in the board's column slice.
type Column struct {
	ID    types.ID `json:"id"`    // Unique identifier for the column
	Title string   `json:"title"` // Display name, may be empty or duplicated
}
