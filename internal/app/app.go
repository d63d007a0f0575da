// Package app wires the board store, drag controller and persistence
// together for the TUI and CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/ids"
	"github.com/thenoetrevino/tablero/internal/models"
)

// App holds the board and the services around it.
// This is the main application container that manages their lifecycles.
type App struct {
	Store      *board.Store
	Controller *drag.Controller
	Config     *config.Config

	repo        database.BoardRepository
	ctx         context.Context
	logger      *slog.Logger
	onSaveError func(error)
	unsubscribe func()
	db          *sql.DB

	mu      sync.Mutex
	lastErr error
}

// New loads the board from repo and starts autosaving every committed
// mutation back to it. A repository with nothing saved yields an empty board.
func New(ctx context.Context, repo database.BoardRepository, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	gen := options.generator
	if gen == nil {
		var err error
		gen, err = ids.New(cfg.IDs.Format)
		if err != nil {
			return nil, err
		}
	}

	initial, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	if !found {
		options.logger.Info("no saved board, starting empty")
		initial = models.Board{}
	}

	store := board.NewStore(gen, initial)
	a := &App{
		Store:       store,
		Controller:  drag.NewController(store),
		Config:      cfg,
		repo:        repo,
		ctx:         ctx,
		logger:      options.logger,
		onSaveError: options.onSaveError,
	}
	a.unsubscribe = store.Subscribe(a.save)

	return a, nil
}

// Open opens the database named by the config and builds an App over it.
// Close releases the database.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	a, err := New(ctx, database.NewBoardRepo(db), cfg, opts...)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}
	a.db = db
	return a, nil
}

// save is the autosave observer. The in-memory board stays authoritative
// when a save fails; the failure is only reported.
func (a *App) save(snapshot models.Board) {
	err := a.repo.Save(a.ctx, snapshot.Columns, snapshot.Tasks)

	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()

	if err == nil {
		return
	}
	a.logger.Warn("failed to save board", "error", err,
		"columns", len(snapshot.Columns), "tasks", len(snapshot.Tasks))
	if a.onSaveError != nil {
		a.onSaveError(err)
	}
}

// SetSaveErrorHandler replaces the callback invoked when an autosave fails.
// The TUI installs its own once the program exists.
func (a *App) SetSaveErrorHandler(fn func(error)) {
	a.onSaveError = fn
}

// LastSaveError returns the result of the most recent autosave
func (a *App) LastSaveError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Close stops autosaving and releases the database if the App opened it.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.db != nil {
		err := a.db.Close()
		a.db = nil
		return err
	}
	return nil
}
