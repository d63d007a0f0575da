package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
)

// BoardReader restores a persisted board
type BoardReader interface {
	// Load returns the stored board. found is false when nothing has been
	// saved yet (or only part of it was), which callers treat as an empty board.
	Load(ctx context.Context) (board models.Board, found bool, err error)
}

// BoardWriter persists a board
type BoardWriter interface {
	Save(ctx context.Context, columns []models.Column, tasks []models.Task) error
}

// BoardRepository combines all board persistence operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}
