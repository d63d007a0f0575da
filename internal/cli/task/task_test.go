package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
	"github.com/thenoetrevino/tablero/internal/types"
)

// contents returns the task contents of a column in board order
func contents(a *app.App, columnID types.ID) []string {
	var out []string
	for _, task := range a.Store.TasksInColumn(columnID) {
		out = append(out, task.Content)
	}
	return out
}

func TestAddTask(t *testing.T) {
	tests := []struct {
		name   string
		args   func(col types.ID) []string
		want   []string
		verify func(t *testing.T, res clitest.Result)
	}{
		{
			name: "default content",
			args: func(col types.ID) []string { return []string{"add", "--column", string(col)} },
			want: []string{"first", "Task 2"},
		},
		{
			name: "with content",
			args: func(col types.ID) []string {
				return []string{"add", "--column", string(col), "--content", "write docs"}
			},
			want: []string{"first", "write docs"},
			verify: func(t *testing.T, res clitest.Result) {
				assert.Contains(t, res.Stdout, "Task 'write docs' created")
				assert.Contains(t, res.Stdout, "Column: Todo, position 2")
			},
		},
		{
			name: "at the top",
			args: func(col types.ID) []string {
				return []string{"add", "--column", string(col), "--content", "urgent", "--position", "1"}
			},
			want: []string{"urgent", "first"},
		},
		{
			name: "json output",
			args: func(col types.ID) []string {
				return []string{"add", "--column", string(col), "--content", "triage", "--json"}
			},
			want: []string{"first", "triage"},
			verify: func(t *testing.T, res clitest.Result) {
				data := clitest.ParseJSONData(t, res.Stdout)
				assert.Equal(t, "triage", data["content"])
				assert.Equal(t, "Todo", data["column"])
				assert.Equal(t, float64(2), data["position"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.SetupTestApp(t)
			col := testutil.CreateTestColumn(t, a, "Todo")
			testutil.CreateTestTask(t, a, col, "first")

			res := clitest.ExecuteCLICommand(t, a, TaskCmd(), tt.args(col))

			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, contents(a, col))
			if tt.verify != nil {
				tt.verify(t, res)
			}
		})
	}
}

func TestEditTask(t *testing.T) {
	a := testutil.SetupTestApp(t)
	col := testutil.CreateTestColumn(t, a, "Todo")
	id := testutil.CreateTestTask(t, a, col, "draft")

	res := clitest.ExecuteCLICommand(t, a, TaskCmd(), []string{"edit", string(id), "--content", "final"})

	require.NoError(t, res.Err)
	assert.Equal(t, []string{"final"}, contents(a, col))
}

func TestDeleteTask(t *testing.T) {
	a := testutil.SetupTestApp(t)
	col := testutil.CreateTestColumn(t, a, "Todo")
	id := testutil.CreateTestTask(t, a, col, "gone")
	testutil.CreateTestTask(t, a, col, "stays")

	res := clitest.ExecuteCLICommand(t, a, TaskCmd(), []string{"delete", string(id), "--quiet"})

	require.NoError(t, res.Err)
	assert.Equal(t, string(id)+"\n", res.Stdout)
	assert.Equal(t, []string{"stays"}, contents(a, col))
}

func TestMoveTask(t *testing.T) {
	setup := func(t *testing.T) (*app.App, types.ID, types.ID, map[string]types.ID) {
		a := testutil.SetupTestApp(t)
		todo := testutil.CreateTestColumn(t, a, "Todo")
		done := testutil.CreateTestColumn(t, a, "Done")
		ids := map[string]types.ID{}
		// interleave so the flat sequence differs from each column's order
		ids["a"] = testutil.CreateTestTask(t, a, todo, "a")
		ids["x"] = testutil.CreateTestTask(t, a, done, "x")
		ids["b"] = testutil.CreateTestTask(t, a, todo, "b")
		ids["y"] = testutil.CreateTestTask(t, a, done, "y")
		ids["c"] = testutil.CreateTestTask(t, a, todo, "c")
		return a, todo, done, ids
	}

	tests := []struct {
		name     string
		args     func(todo, done types.ID, ids map[string]types.ID) []string
		wantTodo []string
		wantDone []string
	}{
		{
			name: "to another column goes last",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["a"]), "--column", string(done)}
			},
			wantTodo: []string{"b", "c"},
			wantDone: []string{"x", "y", "a"},
		},
		{
			name: "to the top of another column",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["c"]), "--column", string(done), "--position", "1"}
			},
			wantTodo: []string{"a", "b"},
			wantDone: []string{"c", "x", "y"},
		},
		{
			name: "between tasks of another column",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["a"]), "--column", string(done), "--position", "2"}
			},
			wantTodo: []string{"b", "c"},
			wantDone: []string{"x", "a", "y"},
		},
		{
			name: "down within its column",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["a"]), "--position", "3"}
			},
			wantTodo: []string{"b", "c", "a"},
			wantDone: []string{"x", "y"},
		},
		{
			name: "up within its column",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["c"]), "--position", "1"}
			},
			wantTodo: []string{"c", "a", "b"},
			wantDone: []string{"x", "y"},
		},
		{
			name: "past the end",
			args: func(todo, done types.ID, ids map[string]types.ID) []string {
				return []string{"move", string(ids["b"]), "--position", "10"}
			},
			wantTodo: []string{"a", "c", "b"},
			wantDone: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, todo, done, ids := setup(t)

			res := clitest.ExecuteCLICommand(t, a, TaskCmd(), tt.args(todo, done, ids))

			require.NoError(t, res.Err)
			assert.Equal(t, tt.wantTodo, contents(a, todo))
			assert.Equal(t, tt.wantDone, contents(a, done))
		})
	}
}

func TestMoveTask_IntoEmptyColumn(t *testing.T) {
	a := testutil.SetupTestApp(t)
	todo := testutil.CreateTestColumn(t, a, "Todo")
	empty := testutil.CreateTestColumn(t, a, "Empty")
	id := testutil.CreateTestTask(t, a, todo, "solo")

	res := clitest.ExecuteCLICommand(t, a, TaskCmd(), []string{"move", string(id), "--column", string(empty), "--json"})

	require.NoError(t, res.Err)
	task, _ := a.Store.Task(id)
	assert.Equal(t, empty, task.ColumnID)
	data := clitest.ParseJSONData(t, res.Stdout)
	assert.Equal(t, string(empty), data["columnId"])
	assert.Equal(t, float64(1), data["position"])
}

func TestTaskCommands_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
		wantIs   error
	}{
		{"add without column", []string{"add", "--content", "x"}, cli.ExitUsage, "--column is required", nil},
		{"add to unknown column", []string{"add", "--column", "nope"}, cli.ExitNotFound, "column not found: nope", models.ErrColumnNotFound},
		{"edit unknown task", []string{"edit", "nope", "--content", "x"}, cli.ExitNotFound, "task not found: nope", models.ErrTaskNotFound},
		{"edit without content", []string{"edit", "TASK"}, cli.ExitUsage, "--content is required", nil},
		{"delete unknown task", []string{"delete", "nope"}, cli.ExitNotFound, "task not found: nope", models.ErrTaskNotFound},
		{"move without target", []string{"move", "TASK"}, cli.ExitUsage, "--column or --position is required", nil},
		{"move to unknown column", []string{"move", "TASK", "--column", "nope"}, cli.ExitNotFound, "column not found: nope", models.ErrColumnNotFound},
		{"move to negative position", []string{"move", "TASK", "--position", "-1"}, cli.ExitValidation, "position must be 1 or greater", nil},
		{"edit with two ids", []string{"edit", "a", "b", "--content", "x"}, cli.ExitUsage, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.SetupTestApp(t)
			col := testutil.CreateTestColumn(t, a, "Todo")
			id := testutil.CreateTestTask(t, a, col, "keep")
			args := make([]string, len(tt.args))
			for i, arg := range tt.args {
				if arg == "TASK" {
					arg = string(id)
				}
				args[i] = arg
			}

			res := clitest.ExecuteCLICommand(t, a, TaskCmd(), args)

			require.Error(t, res.Err)
			assert.Equal(t, tt.wantCode, res.ExitCode())
			if tt.wantErr != "" {
				assert.Contains(t, res.Stderr, tt.wantErr)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, res.Err, tt.wantIs)
			}
			assert.Equal(t, []string{"keep"}, contents(a, col), "board unchanged")
		})
	}
}
