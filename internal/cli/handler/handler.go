// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against the opened board and returns what to print
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

func (fn HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return fn(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Args      []string
	Formatter *cli.OutputFormatter
	Flags     *FlagParser
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic and returns a cobra RunE.
// It opens the board, runs the handler, fails if the resulting autosave
// failed and prints the result in the requested output mode.
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		formatter := cli.NewFormatter(cmd)

		c, err := cli.FromCommand(cmd)
		if err != nil {
			return cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", "%w", err)
		}
		defer c.Close()

		arguments := &Arguments{
			Args:      args,
			Formatter: formatter,
			Flags:     NewFlagParser(cmd, formatter),
			cmd:       cmd,
		}

		result, err := h.Execute(cmd.Context(), c, arguments)
		if err != nil {
			return err
		}
		// nothing to report, e.g. a declined confirmation
		if result == nil {
			return nil
		}

		if err := c.Saved(); err != nil {
			return cli.Fail(formatter, cli.ExitError, "SAVE_ERROR", "%w", err)
		}

		return formatter.Success(result)
	}
}
