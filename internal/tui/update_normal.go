package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

// updateNormal handles keys in normal mode
func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	// A drag ends only through the pointer
	if m.sensor.Dragging() {
		return nil
	}
	m.notifications.ClearLevel(state.LevelInfo)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.CreateColumn):
		col := m.store.AddColumn()
		m.ui.SelectColumn(col.ID)

	case key.Matches(msg, m.keys.AddTask):
		m.addTask(m.ui.SelectedColumn())

	case key.Matches(msg, m.keys.EditTask):
		return m.openEditTask()

	case key.Matches(msg, m.keys.DeleteTask):
		m.deleteSelectedTask()

	case key.Matches(msg, m.keys.RenameColumn):
		return m.openRenameColumn()

	case key.Matches(msg, m.keys.DeleteColumn):
		return m.openDeleteColumn()

	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumnSelection(-1)

	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumnSelection(1)

	case key.Matches(msg, m.keys.PrevTask):
		m.moveTaskSelection(-1)

	case key.Matches(msg, m.keys.NextTask):
		m.moveTaskSelection(1)

	case key.Matches(msg, m.keys.Search):
		m.ui.SetMode(state.SearchMode)
		m.searchInput.SetValue(m.search.Query)
		m.searchInput.CursorEnd()
		return m.searchInput.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.Clear()

	case key.Matches(msg, m.keys.ShowHelp):
		m.ui.SetMode(state.HelpMode)
	}

	return nil
}

// addTask appends a task to a column and selects it.
// Tasks are only ever added to columns that exist.
func (m *Model) addTask(columnID types.ID) {
	if _, ok := m.store.Column(columnID); !ok {
		m.notifications.Set(state.LevelInfo, "Add a column first")
		return
	}
	task := m.store.AddTask(columnID)
	m.ui.SelectTask(columnID, task.ID)
}

// deleteSelectedTask removes the selected task and selects its neighbour
func (m *Model) deleteSelectedTask() {
	taskID := m.ui.SelectedTask()
	if taskID == types.None {
		return
	}
	colID := m.ui.SelectedColumn()
	tasks := m.visibleTasks(m.store.Snapshot(), colID)
	idx := indexOf(tasks, taskID)

	m.store.RemoveTask(taskID)

	tasks = m.visibleTasks(m.store.Snapshot(), colID)
	if len(tasks) == 0 {
		m.ui.SelectColumn(colID)
		return
	}
	next := tasks[min(max(idx, 0), len(tasks)-1)]
	m.ui.SelectTask(colID, next.ID)
}

// moveColumnSelection moves the selection delta columns sideways, keeping
// roughly the same card position
func (m *Model) moveColumnSelection(delta int) {
	snapshot := m.store.Snapshot()
	if len(snapshot.Columns) == 0 {
		return
	}

	cur := snapshot.ColumnIndex(m.ui.SelectedColumn())
	row := indexOf(m.visibleTasks(snapshot, m.ui.SelectedColumn()), m.ui.SelectedTask())
	next := min(max(cur+delta, 0), len(snapshot.Columns)-1)
	col := snapshot.Columns[next]

	tasks := m.visibleTasks(snapshot, col.ID)
	if row < 0 || len(tasks) == 0 {
		m.ui.SelectColumn(col.ID)
		return
	}
	m.ui.SelectTask(col.ID, tasks[min(row, len(tasks)-1)].ID)
}

// moveTaskSelection moves the selection delta cards within the column
func (m *Model) moveTaskSelection(delta int) {
	colID := m.ui.SelectedColumn()
	tasks := m.visibleTasks(m.store.Snapshot(), colID)
	if len(tasks) == 0 {
		return
	}

	cur := indexOf(tasks, m.ui.SelectedTask())
	var next int
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = len(tasks) - 1
	default:
		next = min(max(cur+delta, 0), len(tasks)-1)
	}
	m.ui.SelectTask(colID, tasks[next].ID)
}

func (m *Model) openRenameColumn() tea.Cmd {
	col, ok := m.store.Column(m.ui.SelectedColumn())
	if !ok {
		return nil
	}
	m.forms.Reset()
	m.forms.Text = col.Title
	form := huhforms.CreateColumnForm(&m.forms.Text).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.forms.Open(form, col.ID)
	m.ui.SetMode(state.RenameColumnMode)
	return form.Init()
}

func (m *Model) openEditTask() tea.Cmd {
	task, ok := m.store.Task(m.ui.SelectedTask())
	if !ok {
		return nil
	}
	m.forms.Reset()
	m.forms.Text = task.Content
	form := huhforms.CreateTaskForm(&m.forms.Text).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.forms.Open(form, task.ID)
	m.ui.SetMode(state.EditTaskMode)
	return form.Init()
}

func (m *Model) openDeleteColumn() tea.Cmd {
	col, ok := m.store.Column(m.ui.SelectedColumn())
	if !ok {
		return nil
	}
	m.forms.Reset()
	form := huhforms.CreateDeleteColumnForm(&m.forms.Confirm, col.Title, m.store.Snapshot().TaskCount(col.ID)).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.forms.Open(form, col.ID)
	m.ui.SetMode(state.DeleteColumnConfirmMode)
	return form.Init()
}

func indexOf(tasks []models.Task, id types.ID) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
