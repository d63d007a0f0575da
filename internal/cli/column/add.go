package column

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column",
		Long: `Add a column to the end of the board, or at a position.

Without --title the column gets the default name "Column N".

Examples:
  # Append a column
  tablero column add --title="Review"

  # Insert as the first column
  tablero column add --title="Inbox" --position=1

  # Quiet mode for bash capture
  COLUMN_ID=$(tablero column add --title="Review" --quiet)
`,
		Args: cli.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAdd)),
	}

	cmd.Flags().String("title", "", "Column title")
	cmd.Flags().Int("position", 0, "1-based position (default: last)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	title, titleSet, err := args.Flags.ParseString("title")
	if err != nil {
		return nil, err
	}
	index, positionSet, err := args.Flags.ParsePosition("position")
	if err != nil {
		return nil, err
	}

	store := c.App.Store
	col := store.AddColumn()
	if titleSet {
		store.RenameColumn(col.ID, title)
	}
	if positionSet {
		store.ReorderColumns(store.ColumnIndex(col.ID), index)
	}

	col, _ = store.Column(col.ID)
	return cli.NewColumnResult(store, col, "created"), nil
}
