package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ColumnResult is the output of a column command
type ColumnResult struct {
	ID       types.ID `json:"id"`
	Title    string   `json:"title"`
	Position int      `json:"position"`
	Tasks    int      `json:"tasks"`
	// Action is the past-tense verb shown in human output
	Action string `json:"-"`
}

func (r ColumnResult) GetID() types.ID { return r.ID }

func (r ColumnResult) Human() string {
	return fmt.Sprintf("%s Column '%s' %s (ID: %s, position %d)",
		styles.SuccessStyle.Render("✓"), r.Title, r.Action, r.ID, r.Position)
}

// NewColumnResult describes a column as it currently is on the board.
// Position is 1-based.
func NewColumnResult(store *board.Store, col models.Column, action string) ColumnResult {
	return ColumnResult{
		ID:       col.ID,
		Title:    col.Title,
		Position: store.ColumnIndex(col.ID) + 1,
		Tasks:    len(store.TasksInColumn(col.ID)),
		Action:   action,
	}
}

// TaskResult is the output of a task command
type TaskResult struct {
	ID       types.ID `json:"id"`
	ColumnID types.ID `json:"columnId"`
	Column   string   `json:"column"`
	Content  string   `json:"content"`
	// Position is the 1-based place of the task within its column
	Position int    `json:"position"`
	Action   string `json:"-"`
}

func (r TaskResult) GetID() types.ID { return r.ID }

func (r TaskResult) Human() string {
	return fmt.Sprintf("%s Task '%s' %s (ID: %s)\n  Column: %s, position %d",
		styles.SuccessStyle.Render("✓"), r.Content, r.Action, r.ID, r.Column, r.Position)
}

// NewTaskResult describes a task as it currently is on the board
func NewTaskResult(store *board.Store, task models.Task, action string) TaskResult {
	r := TaskResult{
		ID:       task.ID,
		ColumnID: task.ColumnID,
		Content:  task.Content,
		Action:   action,
	}
	if col, ok := store.Column(task.ColumnID); ok {
		r.Column = col.Title
	}
	for i, t := range store.TasksInColumn(task.ColumnID) {
		if t.ID == task.ID {
			r.Position = i + 1
			break
		}
	}
	return r
}

// DeletedResult is the output of a delete command
type DeletedResult struct {
	ID   types.ID `json:"id"`
	Kind string   `json:"kind"`
	// RemovedTasks counts tasks deleted along with a column
	RemovedTasks int `json:"removedTasks,omitempty"`
}

func (r DeletedResult) GetID() types.ID { return r.ID }

func (r DeletedResult) Human() string {
	msg := fmt.Sprintf("%s %s %s deleted", styles.DeleteStyle.Render("✓"), capitalize(r.Kind), r.ID)
	if r.RemovedTasks > 0 {
		msg += fmt.Sprintf(" with %d task(s)", r.RemovedTasks)
	}
	return msg
}

// BoardResult is the whole board, in board order
type BoardResult struct {
	models.Board
}

// Human lists every column followed by its tasks
func (r BoardResult) Human() string {
	if len(r.Columns) == 0 {
		return "Board is empty. Add a column with: tablero column add"
	}

	var b strings.Builder
	for i, col := range r.Columns {
		if i > 0 {
			b.WriteString("\n")
		}
		tasks := r.TasksInColumn(col.ID)
		fmt.Fprintf(&b, "%s %s\n",
			styles.TitleStyle.Render(fmt.Sprintf("%d. ", i+1))+styles.Placeholder(col.Title),
			styles.SubtitleStyle.Render(fmt.Sprintf("(ID: %s, %d tasks)", col.ID, len(tasks))))
		for _, task := range tasks {
			fmt.Fprintf(&b, "   • %s %s\n", styles.Placeholder(task.Content),
				styles.SubtitleStyle.Render("("+string(task.ID)+")"))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
