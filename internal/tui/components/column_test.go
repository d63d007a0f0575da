package components

import (
	"fmt"
	"image"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

func makeTasks(n int) []models.Task {
	tasks := make([]models.Task, n)
	for i := range tasks {
		tasks[i] = models.Task{
			ID:       types.ID(fmt.Sprintf("t%d", i)),
			ColumnID: "c",
			Content:  fmt.Sprintf("Task %d", i+1),
		}
	}
	return tasks
}

func TestMaxVisibleCards(t *testing.T) {
	tests := []struct {
		name   string
		height int
		tasks  int
		want   int
	}{
		{"all fit", 20, 3, 3},
		{"exactly fits", 13, 3, 3},
		{"overflow reserves indicator rows", 13, 4, 2},
		{"never below one", 5, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxVisibleCards(tt.height, tt.tasks))
		})
	}
}

func TestRenderColumn_Geometry(t *testing.T) {
	tasks := makeTasks(2)
	view := RenderColumn(ColumnProps{
		Column: models.Column{ID: "c", Title: "Todo"},
		Tasks:  tasks,
		Total:  2,
		Height: 20,
	})

	assert.Equal(t, image.Rect(0, 0, ColumnWidth, 20), view.Bounds)
	assert.Equal(t, 20, lipgloss.Height(view.Rendered))
	assert.Equal(t, image.Rect(0, 0, ColumnWidth, 2), view.Header)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, tasks[0].ID, view.Cards[0].TaskID)
	assert.Equal(t, image.Rect(2, 2, ColumnWidth-2, 5), view.Cards[0].Bounds)
	assert.Equal(t, image.Rect(2, 5, ColumnWidth-2, 8), view.Cards[1].Bounds)
	assert.Equal(t, image.Rect(2, 8, ColumnWidth-2, 9), view.AddTask)

	assert.Contains(t, view.Rendered, "Todo")
	assert.Contains(t, view.Rendered, "(2)")
	assert.Contains(t, view.Rendered, AddTaskLabel)
}

func TestRenderColumn_Scrolled(t *testing.T) {
	tasks := makeTasks(10)
	view := RenderColumn(ColumnProps{
		Column:       models.Column{ID: "c", Title: "Long"},
		Tasks:        tasks,
		Total:        10,
		Height:       14,
		ScrollOffset: 3,
	})

	visible := MaxVisibleCards(14, 10)
	require.Len(t, view.Cards, visible)
	assert.Equal(t, tasks[3].ID, view.Cards[0].TaskID)
	assert.Contains(t, view.Rendered, "▲ 3 more")
	assert.Contains(t, view.Rendered, fmt.Sprintf("▼ %d more", 10-3-visible))
}

func TestRenderColumn_OffsetClamped(t *testing.T) {
	tasks := makeTasks(3)
	view := RenderColumn(ColumnProps{
		Column:       models.Column{ID: "c"},
		Tasks:        tasks,
		Total:        3,
		Height:       20,
		ScrollOffset: 7,
	})

	require.Len(t, view.Cards, 3)
	assert.Equal(t, tasks[0].ID, view.Cards[0].TaskID)
	assert.Contains(t, view.Rendered, "untitled")
}

func TestRenderColumn_FilteredCount(t *testing.T) {
	view := RenderColumn(ColumnProps{
		Column: models.Column{ID: "c", Title: "Todo"},
		Tasks:  makeTasks(1),
		Total:  4,
		Height: 20,
	})
	assert.Contains(t, view.Rendered, "(1/4)")
}

func TestRenderTask_Truncates(t *testing.T) {
	task := models.Task{ID: "t", Content: "a very long task description that cannot fit on one card"}

	card := RenderTask(task, 20, CardNormal)

	assert.Equal(t, 20, lipgloss.Width(card))
	assert.Equal(t, 3, lipgloss.Height(card))
	assert.Contains(t, card, "…")
}
