package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestLoad_NothingSaved(t *testing.T) {
	t.Parallel()
	repo := NewBoardRepo(setupTestDB(t))

	board, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, board.Columns)
	assert.Empty(t, board.Tasks)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []models.Column
		tasks   []models.Task
	}{
		{
			name:    "empty board",
			columns: []models.Column{},
			tasks:   []models.Task{},
		},
		{
			name:    "one column no tasks",
			columns: []models.Column{column("c1", "Todo")},
			tasks:   []models.Task{},
		},
		{
			name:    "two columns three tasks",
			columns: []models.Column{column("c1", "Todo"), column("c2", "Done")},
			tasks: []models.Task{
				task("t1", "c1", "write tests"),
				task("t2", "c2", "ship"),
				task("t3", "c1", ""),
			},
		},
		{
			name:    "empty and duplicate titles",
			columns: []models.Column{column("c1", ""), column("c2", "Same"), column("c3", "Same")},
			tasks:   []models.Task{task("t1", "c3", "unicode ✓ and \"quotes\"")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := NewBoardRepo(setupTestDB(t))
			ctx := context.Background()

			require.NoError(t, repo.Save(ctx, tt.columns, tt.tasks))

			board, found, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, tt.columns, board.Columns)
			assert.Equal(t, tt.tasks, board.Tasks)
		})
	}
}

func TestSave_NilSlicesStoredAsEmpty(t *testing.T) {
	t.Parallel()
	repo := NewBoardRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil, nil))

	board, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, board.Columns)
	assert.NotNil(t, board.Tasks)
	assert.Empty(t, board.Columns)
}

func TestSave_Overwrites(t *testing.T) {
	t.Parallel()
	repo := NewBoardRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx,
		[]models.Column{column("c1", "Todo"), column("c2", "Done")},
		[]models.Task{task("t1", "c1", "a")},
	))
	require.NoError(t, repo.Save(ctx,
		[]models.Column{column("c2", "Done")},
		[]models.Task{},
	))

	board, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []models.Column{column("c2", "Done")}, board.Columns)
	assert.Empty(t, board.Tasks)
}

func TestLoad_PartialRecordIsNotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewBoardRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO records (key, value) VALUES (?, ?)`, ColumnsKey, `[{"id":"c1","title":"Todo"}]`)
	require.NoError(t, err)

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found, "columns without tasks must not count as a saved board")
}

func TestLoad_CorruptRecord(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewBoardRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO records (key, value) VALUES (?, ?), (?, ?)`,
		ColumnsKey, `not json`, TasksKey, `[]`)
	require.NoError(t, err)

	_, found, err := repo.Load(ctx)
	require.Error(t, err)
	assert.False(t, found)
}

func TestLoad_JSONShape(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewBoardRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO records (key, value) VALUES (?, ?), (?, ?)`,
		ColumnsKey, `[{"id":"a","title":"Backlog"}]`,
		TasksKey, `[{"id":"x","columnId":"a","content":"hello"}]`)
	require.NoError(t, err)

	board, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []models.Column{column("a", "Backlog")}, board.Columns)
	assert.Equal(t, []models.Task{task("x", "a", "hello")}, board.Tasks)
}

func TestPersistence_AcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := testDBPath(t)

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	columns := []models.Column{column("c1", "Todo"), column("c2", "Doing")}
	tasks := []models.Task{task("t1", "c2", "persist me"), task("t2", "c1", "and me")}
	require.NoError(t, NewBoardRepo(db).Save(ctx, columns, tasks))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	board, found, err := NewBoardRepo(db).Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, columns, board.Columns)
	assert.Equal(t, tasks, board.Tasks)
}

func TestInitDB_MigrationsIdempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(context.Background(), db))
	require.NoError(t, runMigrations(context.Background(), db))
}
