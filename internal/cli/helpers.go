package cli

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// RequireColumn looks up a column, failing with ExitNotFound when it is not on the board
func RequireColumn(f *OutputFormatter, store *board.Store, id string) (models.Column, error) {
	col, ok := store.Column(types.ID(id))
	if !ok {
		return models.Column{}, failWithSuggestion(f, ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Errorf("%w: %s", models.ErrColumnNotFound, id), "List column ids with: tablero board show")
	}
	return col, nil
}

// RequireTask looks up a task, failing with ExitNotFound when it is not on the board
func RequireTask(f *OutputFormatter, store *board.Store, id string) (models.Task, error) {
	task, ok := store.Task(types.ID(id))
	if !ok {
		return models.Task{}, failWithSuggestion(f, ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("%w: %s", models.ErrTaskNotFound, id), "List task ids with: tablero board show")
	}
	return task, nil
}

// ValidatePosition checks a 1-based position flag and returns it as an index
func ValidatePosition(f *OutputFormatter, position int) (int, error) {
	if position < 1 {
		return 0, Fail(f, ExitValidation, "INVALID_POSITION", "position must be 1 or greater, got %d", position)
	}
	return position - 1, nil
}

// TaskTargetIndex returns the flat sequence index that puts taskID at the
// 0-based position among the other tasks of columnID. Positions past the
// end place it last. With no other tasks in the column the index is unchanged.
func TaskTargetIndex(b models.Board, taskID, columnID types.ID, position int) int {
	from := b.TaskIndex(taskID)

	var others []models.Task
	for _, task := range b.TasksInColumn(columnID) {
		if task.ID != taskID {
			others = append(others, task)
		}
	}
	if len(others) == 0 {
		return from
	}

	// The move removes the task before inserting it, which shifts
	// everything after its old index down by one.
	if position < len(others) {
		j := b.TaskIndex(others[position].ID)
		if from < j {
			return j - 1
		}
		return j
	}
	j := b.TaskIndex(others[len(others)-1].ID)
	if from < j {
		return j
	}
	return j + 1
}
