package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

func TestInitialModel_SelectsFirstColumn(t *testing.T) {
	m := setupTestModel(t)
	first := m.store.AddColumn()
	m.store.AddColumn()

	m = newSizedModel(t, m.app)

	assert.Equal(t, first.ID, m.ui.SelectedColumn())
	assert.Equal(t, state.NormalMode, m.ui.Mode())
}

func TestKeys_AddColumnAndTask(t *testing.T) {
	m := setupTestModel(t)

	m = update(m, keyPress("C"))
	cols := m.store.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, "Column 1", cols[0].Title)
	assert.Equal(t, cols[0].ID, m.ui.SelectedColumn())

	m = update(m, keyPress("a"))
	tasks := m.store.TasksInColumn(cols[0].ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Task 1", tasks[0].Content)
	assert.Equal(t, tasks[0].ID, m.ui.SelectedTask())
}

func TestKeys_AddTaskWithoutColumn(t *testing.T) {
	m := setupTestModel(t)

	m = update(m, keyPress("a"))

	assert.Empty(t, m.store.Tasks())
	n, ok := m.notifications.Top()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)
}

func TestKeys_Navigation(t *testing.T) {
	m := setupTestModel(t)
	left := m.store.AddColumn()
	right := m.store.AddColumn()
	a := m.store.AddTask(left.ID)
	b := m.store.AddTask(left.ID)
	c := m.store.AddTask(right.ID)
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	m = update(m, keyPress("j"))
	assert.Equal(t, a.ID, m.ui.SelectedTask())

	m = update(m, keyPress("j"), keyPress("j"))
	assert.Equal(t, b.ID, m.ui.SelectedTask(), "selection stops at the last card")

	m = update(m, keyPress("l"))
	assert.Equal(t, right.ID, m.ui.SelectedColumn())
	assert.Equal(t, c.ID, m.ui.SelectedTask(), "row is clamped to the shorter column")

	m = update(m, specialKey(tea.KeyLeft))
	assert.Equal(t, left.ID, m.ui.SelectedColumn())

	m = update(m, keyPress("k"), keyPress("k"))
	assert.Equal(t, a.ID, m.ui.SelectedTask())
}

func TestKeys_DeleteTaskSelectsNeighbour(t *testing.T) {
	m := setupTestModel(t)
	col := m.store.AddColumn()
	a := m.store.AddTask(col.ID)
	b := m.store.AddTask(col.ID)
	m.ui.SelectTask(col.ID, a.ID)

	m = update(m, keyPress("d"))
	assert.Equal(t, []types.ID{b.ID}, taskIDs(m.store.Tasks()))
	assert.Equal(t, b.ID, m.ui.SelectedTask())

	m = update(m, keyPress("d"))
	assert.Empty(t, m.store.Tasks())
	assert.Equal(t, types.None, m.ui.SelectedTask())
	assert.Equal(t, col.ID, m.ui.SelectedColumn())
}

func TestKeys_Quit(t *testing.T) {
	m := setupTestModel(t)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestForms_RenameColumn(t *testing.T) {
	m := setupTestModel(t)
	col := m.store.AddColumn()
	m.ui.SelectColumn(col.ID)

	m = update(m, keyPress("R"))
	require.Equal(t, state.RenameColumnMode, m.ui.Mode())
	require.NotNil(t, m.forms.Form)
	assert.Equal(t, col.Title, m.forms.Text, "form starts with the current title")

	// Simulate the user typing and submitting
	m.forms.Text = "  In Progress  "
	m.forms.Form.State = huh.StateCompleted
	m = update(m, keyPress("x"))

	got, _ := m.store.Column(col.ID)
	assert.Equal(t, "In Progress", got.Title)
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Nil(t, m.forms.Form)
}

func TestForms_EditTask(t *testing.T) {
	m := setupTestModel(t)
	col := m.store.AddColumn()
	task := m.store.AddTask(col.ID)
	m.ui.SelectTask(col.ID, task.ID)

	m = update(m, keyPress("e"))
	require.Equal(t, state.EditTaskMode, m.ui.Mode())

	m.forms.Text = "write release notes"
	m.forms.Form.State = huh.StateCompleted
	m = update(m, keyPress("x"))

	got, _ := m.store.Task(task.ID)
	assert.Equal(t, "write release notes", got.Content)
}

func TestForms_EscapeCancels(t *testing.T) {
	m := setupTestModel(t)
	col := m.store.AddColumn()
	m.ui.SelectColumn(col.ID)

	m = update(m, keyPress("R"))
	m.forms.Text = "changed"
	m = update(m, specialKey(tea.KeyEscape))

	got, _ := m.store.Column(col.ID)
	assert.Equal(t, col.Title, got.Title)
	assert.Equal(t, state.NormalMode, m.ui.Mode())
}

func TestForms_DeleteColumn(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		wantCol int
	}{
		{"confirmed", true, 0},
		{"declined", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestModel(t)
			col := m.store.AddColumn()
			m.store.AddTask(col.ID)
			m.ui.SelectColumn(col.ID)

			m = update(m, keyPress("X"))
			require.Equal(t, state.DeleteColumnConfirmMode, m.ui.Mode())

			m.forms.Confirm = tt.confirm
			m.forms.Form.State = huh.StateCompleted
			m = update(m, keyPress("x"))

			assert.Len(t, m.store.Columns(), tt.wantCol)
			if tt.confirm {
				assert.Empty(t, m.store.Tasks(), "tasks go with their column")
			}
		})
	}
}

func TestSearch_FiltersCards(t *testing.T) {
	m := setupTestModel(t)
	col := m.store.AddColumn()
	bug := m.store.AddTask(col.ID)
	docs := m.store.AddTask(col.ID)
	m.store.EditTask(bug.ID, "fix login bug")
	m.store.EditTask(docs.ID, "update docs")
	m = update(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	m = update(m, keyPress("/"))
	require.Equal(t, state.SearchMode, m.ui.Mode())

	m = update(m, keyPress("b"), keyPress("u"), keyPress("g"))
	assert.Equal(t, "bug", m.search.Query)
	assert.Equal(t, []types.ID{bug.ID}, visibleCardIDs(m, col.ID))

	// Enter keeps the filter
	m = update(m, specialKey(tea.KeyEnter))
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Equal(t, []types.ID{bug.ID}, visibleCardIDs(m, col.ID))

	// The store is untouched
	assert.Equal(t, []types.ID{bug.ID, docs.ID}, taskIDs(m.store.Tasks()))

	// Esc in normal mode clears it
	m = update(m, specialKey(tea.KeyEscape))
	assert.False(t, m.search.IsActive())
	assert.Equal(t, []types.ID{bug.ID, docs.ID}, visibleCardIDs(m, col.ID))
}

func TestSearch_EscapeDropsQuery(t *testing.T) {
	m := setupTestModel(t)
	m.store.AddColumn()

	m = update(m, keyPress("/"), keyPress("z"), specialKey(tea.KeyEscape))

	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.False(t, m.search.IsActive())
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m := setupTestModel(t)

	m = update(m, keyPress("?"))
	require.Equal(t, state.HelpMode, m.ui.Mode())
	assert.Contains(t, m.helpMarkdown(), "add column")

	m = update(m, keyPress("x"))
	assert.Equal(t, state.NormalMode, m.ui.Mode())
}
