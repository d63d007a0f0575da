package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a column",
		Long: `Add a task to the bottom of a column, or at a position within it.

Without --content the task gets the default content "Task N".

Examples:
  # Add a task
  tablero task add --column=1712345678901-1 --content="Write release notes"

  # Put it at the top of the column
  tablero task add --column=1712345678901-1 --content="Hotfix" --position=1

  # JSON output for agents
  tablero task add --column=1712345678901-1 --content="Triage" --json
`,
		Args: cli.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd)),
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	cmd.Flags().String("content", "", "Task content")
	cmd.Flags().Int("position", 0, "1-based position within the column (default: last)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	columnID, columnSet, err := args.Flags.ParseString("column")
	if err != nil {
		return nil, err
	}
	if !columnSet {
		return nil, cli.Fail(args.Formatter, cli.ExitUsage, "MISSING_FLAG", "--column is required")
	}
	content, contentSet, err := args.Flags.ParseString("content")
	if err != nil {
		return nil, err
	}
	index, positionSet, err := args.Flags.ParsePosition("position")
	if err != nil {
		return nil, err
	}

	store := c.App.Store
	// The store accepts any column id; only existing columns are passed to it.
	col, err := cli.RequireColumn(args.Formatter, store, columnID)
	if err != nil {
		return nil, err
	}

	task := store.AddTask(col.ID)
	if contentSet {
		store.EditTask(task.ID, content)
	}
	if positionSet {
		target := cli.TaskTargetIndex(store.Snapshot(), task.ID, col.ID, index)
		store.ReassignAndReorderTask(task.ID, col.ID, target)
	}

	task, _ = store.Task(task.ID)
	return cli.NewTaskResult(store, task, "created"), nil
}
