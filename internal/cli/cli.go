// Package cli holds what the tablero subcommands share: opening the board,
// output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/config"
)

// DBFlag is the persistent flag that overrides the board database path
const DBFlag = "db"

// CLI represents the CLI application context
type CLI struct {
	App *app.App
	// owned is false when the App was injected and someone else closes it
	owned bool
}

// NewCLI loads the configuration and opens the board it points at
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// FromCommand returns the CLI for a running command. An App placed in the
// command's context with WithApp is used as is.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := appFromContext(ctx); ok {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a}, nil
	}

	dbPath, _ := cmd.Flags().GetString(DBFlag)
	c, err := NewCLI(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	styles.Init(c.App.Config.ColorScheme)
	return c, nil
}

// Saved reports the outcome of the autosave triggered by the last mutation
func (c *CLI) Saved() error {
	if err := c.App.LastSaveError(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() {
	if !c.owned {
		return
	}
	if err := c.App.Close(); err != nil {
		slog.Error("Error closing board", "error", err)
	}
}
