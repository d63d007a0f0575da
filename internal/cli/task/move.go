package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to another column or position",
		Long: `Move a task into another column, to a position within a column, or both.

Without --position a task moved to another column goes to its bottom.

Examples:
  # Move to another column
  tablero task move 1712345678901-7 --column=1712345678901-2

  # Move to the top of its current column
  tablero task move 1712345678901-7 --position=1
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().String("column", "", "Target column ID (default: current column)")
	cmd.Flags().Int("position", 0, "1-based position within the target column (default: last)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	columnID, columnSet, err := args.Flags.ParseString("column")
	if err != nil {
		return nil, err
	}
	index, positionSet, err := args.Flags.ParsePosition("position")
	if err != nil {
		return nil, err
	}
	if !columnSet && !positionSet {
		return nil, cli.Fail(args.Formatter, cli.ExitUsage, "MISSING_FLAG", "--column or --position is required")
	}

	store := c.App.Store
	task, err := cli.RequireTask(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}

	target := task.ColumnID
	if columnSet {
		col, err := cli.RequireColumn(args.Formatter, store, columnID)
		if err != nil {
			return nil, err
		}
		target = col.ID
	}
	if !positionSet {
		index = len(store.TasksInColumn(target))
	}

	newIndex := cli.TaskTargetIndex(store.Snapshot(), task.ID, target, index)
	store.ReassignAndReorderTask(task.ID, target, newIndex)

	task, _ = store.Task(task.ID)
	return cli.NewTaskResult(store, task, "moved"), nil
}
