package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task's content",
		Long: `Replace a task's content.

Examples:
  tablero task edit 1712345678901-7 --content="Write release notes for v2"
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runEdit)),
	}

	cmd.Flags().String("content", "", "New content (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	content, contentSet, err := args.Flags.ParseString("content")
	if err != nil {
		return nil, err
	}
	if !contentSet {
		return nil, cli.Fail(args.Formatter, cli.ExitUsage, "MISSING_FLAG", "--content is required")
	}

	store := c.App.Store
	task, err := cli.RequireTask(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}

	store.EditTask(task.ID, content)

	task, _ = store.Task(task.ID)
	return cli.NewTaskResult(store, task, "updated"), nil
}
