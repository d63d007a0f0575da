package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long: `Delete a task.

Examples:
  tablero task delete 1712345678901-7
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runDelete)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.App.Store
	task, err := cli.RequireTask(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}

	store.RemoveTask(task.ID)

	return cli.DeletedResult{ID: task.ID, Kind: "task"}, nil
}
