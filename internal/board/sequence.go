package board

import (
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// move returns a new slice with the element at from moved to to.
// Both indices are clamped into range. The input slice is never modified.
// changed is false when the result would equal the input.
func move[T any](items []T, from, to int) (result []T, changed bool) {
	n := len(items)
	if n == 0 {
		return items, false
	}
	from = clamp(from, n)
	to = clamp(to, n)
	if from == to {
		return items, false
	}

	result = make([]T, 0, n)
	item := items[from]
	for i := 0; i < n; i++ {
		if i == from {
			continue
		}
		if len(result) == to {
			result = append(result, item)
		}
		result = append(result, items[i])
	}
	if len(result) < n {
		result = append(result, item)
	}
	return result, true
}

// clamp limits i to [0, n-1]
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func appendColumn(columns []models.Column, col models.Column) []models.Column {
	out := make([]models.Column, len(columns), len(columns)+1)
	copy(out, columns)
	return append(out, col)
}

func indexOfColumn(columns []models.Column, id types.ID) int {
	for i, col := range columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

func indexOfTask(tasks []models.Task, id types.ID) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
