package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
)

// KeyMap holds the key bindings for normal mode, built from the config
type KeyMap struct {
	AddTask      key.Binding
	EditTask     key.Binding
	DeleteTask   key.Binding
	CreateColumn key.Binding
	RenameColumn key.Binding
	DeleteColumn key.Binding
	PrevColumn   key.Binding
	NextColumn   key.Binding
	PrevTask     key.Binding
	NextTask     key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding
}

// NewKeyMap creates key bindings from configured mappings
func NewKeyMap(k config.KeyMappings) KeyMap {
	return KeyMap{
		AddTask:      key.NewBinding(key.WithKeys(k.AddTask), key.WithHelp(k.AddTask, "add task")),
		EditTask:     key.NewBinding(key.WithKeys(k.EditTask, "enter"), key.WithHelp(k.EditTask, "edit task")),
		DeleteTask:   key.NewBinding(key.WithKeys(k.DeleteTask), key.WithHelp(k.DeleteTask, "delete task")),
		CreateColumn: key.NewBinding(key.WithKeys(k.CreateColumn), key.WithHelp(k.CreateColumn, "add column")),
		RenameColumn: key.NewBinding(key.WithKeys(k.RenameColumn), key.WithHelp(k.RenameColumn, "rename column")),
		DeleteColumn: key.NewBinding(key.WithKeys(k.DeleteColumn), key.WithHelp(k.DeleteColumn, "delete column")),
		PrevColumn:   key.NewBinding(key.WithKeys(k.PrevColumn, "left"), key.WithHelp(k.PrevColumn+"/←", "prev column")),
		NextColumn:   key.NewBinding(key.WithKeys(k.NextColumn, "right"), key.WithHelp(k.NextColumn+"/→", "next column")),
		PrevTask:     key.NewBinding(key.WithKeys(k.PrevTask, "up"), key.WithHelp(k.PrevTask+"/↑", "prev task")),
		NextTask:     key.NewBinding(key.WithKeys(k.NextTask, "down"), key.WithHelp(k.NextTask+"/↓", "next task")),
		Search:       key.NewBinding(key.WithKeys(k.Search), key.WithHelp(k.Search, "search")),
		ClearSearch:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		ShowHelp:     key.NewBinding(key.WithKeys(k.ShowHelp), key.WithHelp(k.ShowHelp, "help")),
		Quit:         key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CreateColumn, k.AddTask, k.Search, k.ShowHelp, k.Quit}
}

// FullHelp returns every binding, grouped for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.EditTask, k.DeleteTask},
		{k.CreateColumn, k.RenameColumn, k.DeleteColumn},
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.Search, k.ClearSearch, k.ShowHelp, k.Quit},
	}
}
