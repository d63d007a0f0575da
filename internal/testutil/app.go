// Package testutil builds boards for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/types"
)

// SetupTestApp opens an App over an in-memory database.
// It is closed when the test ends.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = database.MemoryPath

	a, err := app.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Failed to close test app: %v", err)
		}
	})
	return a
}

// CreateTestColumn appends a column with the given title and returns its ID
func CreateTestColumn(t *testing.T, a *app.App, title string) types.ID {
	t.Helper()
	col := a.Store.AddColumn()
	a.Store.RenameColumn(col.ID, title)
	return col.ID
}

// CreateTestTask appends a task to a column and returns its ID
func CreateTestTask(t *testing.T, a *app.App, columnID types.ID, content string) types.ID {
	t.Helper()
	if _, ok := a.Store.Column(columnID); !ok {
		t.Fatalf("column %s does not exist", columnID)
	}
	task := a.Store.AddTask(columnID)
	a.Store.EditTask(task.ID, content)
	return task.ID
}
