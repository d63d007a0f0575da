// Package launcher opens the board and runs the terminal UI until the user
// quits or the process is signalled.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// shutdownGrace is how long the UI gets to exit after a signal
const shutdownGrace = 5 * time.Second

// runUI is replaced in tests
var runUI = tui.Run

// Launch starts the TUI application over the board at cfg.Storage.Path
func Launch(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		errChan <- runUI(ctx, application)
	}()

	select {
	case err := <-errChan:
		// a program stopped by the signal context is a normal exit
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit in time")
		}
		return nil
	}
}
