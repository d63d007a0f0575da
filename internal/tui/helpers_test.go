package tui

import (
	"context"
	"image"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

const (
	testWidth  = 120
	testHeight = 40
)

// setupTestModel creates a sized model over an in-memory database
func setupTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = database.MemoryPath

	a, err := app.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return newSizedModel(t, a)
}

func newSizedModel(t *testing.T, a *app.App) Model {
	t.Helper()
	m, err := InitialModel(context.Background(), a)
	require.NoError(t, err)
	return update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
}

// update feeds messages to the model in order and returns the result
func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyPress(s string) tea.Msg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func specialKey(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func press(p image.Point) tea.Msg {
	return tea.MouseClickMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func motion(p image.Point) tea.Msg {
	return tea.MouseMotionMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func release(p image.Point) tea.Msg {
	return tea.MouseReleaseMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

// click is a press and release on the same cell
func click(m Model, p image.Point) Model {
	return update(m, press(p), release(p))
}

// dragTo presses at from, moves through to, and releases there
func dragTo(m Model, from, to image.Point) Model {
	return update(m, press(from), motion(to), release(to))
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func region(t *testing.T, m Model, columnID types.ID) columnRegion {
	t.Helper()
	col, ok := m.layout.column(columnID)
	require.True(t, ok, "column %s is not on screen", columnID)
	return col
}

// headerPoint is a cell on the column's title row
func headerPoint(t *testing.T, m Model, columnID types.ID) image.Point {
	t.Helper()
	r := region(t, m, columnID).header
	return image.Pt(r.Min.X+3, r.Max.Y-1)
}

// bodyPoint is an empty cell near the bottom of a column
func bodyPoint(t *testing.T, m Model, columnID types.ID) image.Point {
	t.Helper()
	r := region(t, m, columnID).bounds
	return image.Pt(r.Min.X+4, r.Max.Y-3)
}

func cardPoint(t *testing.T, m Model, taskID types.ID) image.Point {
	t.Helper()
	for _, col := range m.layout.columns {
		for _, card := range col.cards {
			if card.TaskID == taskID {
				return center(card.Bounds)
			}
		}
	}
	require.FailNow(t, "card not on screen", "task %s", taskID)
	return image.Point{}
}

func visibleCardIDs(m Model, columnID types.ID) []types.ID {
	col, ok := m.layout.column(columnID)
	if !ok {
		return nil
	}
	ids := []types.ID{}
	for _, card := range col.cards {
		ids = append(ids, card.TaskID)
	}
	return ids
}

func taskIDs(tasks []models.Task) []types.ID {
	ids := make([]types.ID, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func columnIDs(columns []models.Column) []types.ID {
	ids := make([]types.ID, len(columns))
	for i, col := range columns {
		ids[i] = col.ID
	}
	return ids
}
