// Package tui is the full-screen board: columns side by side with their
// task cards, reordered by dragging with the mouse.
package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config

	app        *app.App
	store      *board.Store
	controller *drag.Controller
	sensor     *drag.PointerSensor
	keys       KeyMap
	help       help.Model

	ui            *state.UIState
	search        *state.SearchState
	searchInput   textinput.Model
	forms         *state.FormState
	notifications *state.NotificationState

	// layout is rebuilt at the end of every Update; View and hit-testing read it
	layout layout
	// press is what the pointer went down on
	press hit
}

// InitialModel creates the TUI model over an opened App
func InitialModel(ctx context.Context, a *app.App) (Model, error) {
	cfg := a.Config
	sensor, err := drag.NewPointerSensor(a.Controller, cfg.Drag.ActivationDistance)
	if err != nil {
		return Model{}, fmt.Errorf("creating pointer sensor: %w", err)
	}

	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.Placeholder = "search tasks"
	searchInput.CharLimit = 100

	notifications := state.NewNotificationState()
	a.SetSaveErrorHandler(func(err error) {
		notifications.Set(state.LevelWarning, "Board not saved: "+err.Error())
	})

	m := Model{
		Ctx:           ctx,
		Config:        cfg,
		app:           a,
		store:         a.Store,
		controller:    a.Controller,
		sensor:        sensor,
		keys:          NewKeyMap(cfg.KeyMappings),
		help:          help.New(),
		ui:            state.NewUIState(),
		search:        state.NewSearchState(),
		searchInput:   searchInput,
		forms:         state.NewFormState(),
		notifications: notifications,
	}

	if cols := m.store.Columns(); len(cols) > 0 {
		m.ui.SelectColumn(cols[0].ID)
	}
	m.relayout()

	return m, nil
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the full-screen program and blocks until the user quits
func Run(ctx context.Context, a *app.App) error {
	m, err := InitialModel(ctx, a)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}
