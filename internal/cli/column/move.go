package column

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column-id>",
		Short: "Move a column to another position",
		Long: `Move a column to a 1-based position. Positions past the last
column move it to the end.

Examples:
  tablero column move 1712345678901-3 --position=1
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().Int("position", 0, "1-based target position (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	index, positionSet, err := args.Flags.ParsePosition("position")
	if err != nil {
		return nil, err
	}
	if !positionSet {
		return nil, cli.Fail(args.Formatter, cli.ExitUsage, "MISSING_FLAG", "--position is required")
	}

	store := c.App.Store
	col, err := cli.RequireColumn(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}

	store.ReorderColumns(store.ColumnIndex(col.ID), index)

	return cli.NewColumnResult(store, col, "moved"), nil
}
