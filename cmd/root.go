// Package cmd assembles the tablero command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/column"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/launcher"
	"github.com/thenoetrevino/tablero/internal/logging"
)

// session holds what one invocation opens before its command runs
type session struct {
	openLog   func(slog.Level) (io.Closer, error)
	logCloser io.Closer
}

func (s *session) close() {
	if s.logCloser != nil {
		_ = s.logCloser.Close()
		s.logCloser = nil
	}
}

// NewRootCmd builds the root command. Run without a subcommand it opens
// the board in the terminal UI.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRoot()
	return rootCmd
}

func newRoot() (*cobra.Command, *session) {
	s := &session{openLog: logging.Init}

	rootCmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a terminal kanban board",
		Long: `Tablero is a terminal kanban board. Columns and tasks are reordered
by dragging them with the mouse; the board is saved locally after every change.

Run without a command to open the board. The subcommands edit the same board
from scripts while the board is not open: an open board keeps its own copy
and overwrites their changes on its next save.`,
		Args:          cli.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s.logCloser, err = s.openLog(cfg.SlogLevel())
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return nil
		},
		RunE: runBoard,
	}

	rootCmd.PersistentFlags().String(cli.DBFlag, "", "Board database path (default from config)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd, s
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	rootCmd, s := newRoot()
	return execute(ctx, rootCmd, s)
}

// execute closes the log file whether or not the command succeeded
func execute(ctx context.Context, rootCmd *cobra.Command, s *session) error {
	defer s.close()
	return rootCmd.ExecuteContext(ctx)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath, _ := cmd.Flags().GetString(cli.DBFlag); dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	return launcher.Launch(cmd.Context(), cfg)
}
