package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testDBPath returns a database file path inside a per-test temp directory.
// The nested directory checks that InitDB creates missing parents.
func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state", "tablero.db")
}

func column(id, title string) models.Column {
	return models.Column{ID: types.ID(id), Title: title}
}

func task(id, columnID, content string) models.Task {
	return models.Task{ID: types.ID(id), ColumnID: types.ID(columnID), Content: content}
}
