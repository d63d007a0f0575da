package column

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column-id>",
		Short: "Rename a column",
		Long: `Rename a column. An empty title is allowed.

Examples:
  tablero column rename 1712345678901-1 --title="Done"
`,
		Args: cli.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runRename)),
	}

	cmd.Flags().String("title", "", "New title (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	title, titleSet, err := args.Flags.ParseString("title")
	if err != nil {
		return nil, err
	}
	if !titleSet {
		return nil, cli.Fail(args.Formatter, cli.ExitUsage, "MISSING_FLAG", "--title is required")
	}

	store := c.App.Store
	col, err := cli.RequireColumn(args.Formatter, store, args.Args[0])
	if err != nil {
		return nil, err
	}

	store.RenameColumn(col.ID, title)

	col, _ = store.Column(col.ID)
	return cli.NewColumnResult(store, col, "renamed"), nil
}
