// Package board implements the board subcommands
package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect the board",
	}

	cmd.AddCommand(ShowCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every column and task",
		Long: `Show every column with its tasks, in board order.

Examples:
  # Human-readable board
  tablero board show

  # JSON output for agents: {"columns": [...], "tasks": [...]}
  tablero board show --json
`,
		Args: cli.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runShow)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return cli.BoardResult{Board: c.App.Store.Snapshot()}, nil
}
