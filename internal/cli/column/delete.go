package column

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column and its tasks",
		Long: `Delete a column (requires confirmation unless --force, --json or --quiet).

Warning: every task in the column is deleted with it.

Examples:
  # Delete with confirmation
  tablero column delete 1712345678901-2

  # Skip confirmation
  tablero column delete 1712345678901-2 --force
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	force, err := args.Flags.ParseBool("force")
	if err != nil {
		return nil, err
	}

	store := c.App.Store
	col, err := cli.RequireColumn(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}
	taskCount := len(store.TasksInColumn(col.ID))

	f := args.Formatter
	if !force && !f.Quiet && !f.JSON {
		cmd := args.GetCmd()
		out := cmd.OutOrStdout()
		if taskCount > 0 {
			fmt.Fprintf(out, "⚠ Warning: %d task(s) in this column will be deleted\n", taskCount)
		}
		fmt.Fprintf(out, "Delete column '%s'? (y/N): ", col.Title)

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil, nil
		}
	}

	store.RemoveColumn(col.ID)

	return cli.DeletedResult{ID: col.ID, Kind: "column", RemovedTasks: taskCount}, nil
}
