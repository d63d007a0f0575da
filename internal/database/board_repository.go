package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Record keys; one record per ordered sequence
const (
	ColumnsKey = "columns"
	TasksKey   = "tasks"
)

// BoardRepo persists the board as two JSON records in SQLite.
type BoardRepo struct {
	db *sql.DB
}

// NewBoardRepo creates a repository over an initialized database
func NewBoardRepo(db *sql.DB) *BoardRepo {
	return &BoardRepo{db: db}
}

// Save writes both sequences in one transaction
func (r *BoardRepo) Save(ctx context.Context, columns []models.Column, tasks []models.Task) error {
	if columns == nil {
		columns = []models.Column{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := putRecord(ctx, tx, ColumnsKey, string(columnsJSON)); err != nil {
			return err
		}
		return putRecord(ctx, tx, TasksKey, string(tasksJSON))
	})
}

// Load reads both sequences. A board counts as found only when both
// records exist.
func (r *BoardRepo) Load(ctx context.Context) (models.Board, bool, error) {
	columnsJSON, ok, err := getRecord(ctx, r.db, ColumnsKey)
	if err != nil || !ok {
		return models.Board{}, false, err
	}
	tasksJSON, ok, err := getRecord(ctx, r.db, TasksKey)
	if err != nil || !ok {
		return models.Board{}, false, err
	}

	var board models.Board
	if err := json.Unmarshal([]byte(columnsJSON), &board.Columns); err != nil {
		return models.Board{}, false, fmt.Errorf("decoding columns: %w", err)
	}
	if err := json.Unmarshal([]byte(tasksJSON), &board.Tasks); err != nil {
		return models.Board{}, false, fmt.Errorf("decoding tasks: %w", err)
	}

	return board.Clone(), true, nil
}

// Compile-time verification that *BoardRepo implements BoardRepository
var _ BoardRepository = (*BoardRepo)(nil)
