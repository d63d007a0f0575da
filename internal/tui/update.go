package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		m.searchInput.SetWidth(max(msg.Width/3, 10))

	case tea.BlurMsg:
		// The terminal lost focus; a release may never arrive.
		m.sensor.Cancel()

	case tea.MouseMsg:
		if m.ui.Mode() == state.NormalMode {
			m.handleMouse(msg)
		}

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	default:
		// Forms need non-key messages too (cursor blink and the like)
		if m.forms.Form != nil {
			cmd = m.updateForm(msg)
		}
	}

	m.syncSaveStatus()
	m.relayout()
	return m, cmd
}

// handleKey dispatches a key press according to the current mode
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.ui.Mode() {
	case state.RenameColumnMode, state.EditTaskMode, state.DeleteColumnConfirmMode:
		return m.updateForm(msg)
	case state.SearchMode:
		return m.updateSearch(msg)
	case state.HelpMode:
		// any key closes help
		m.ui.SetMode(state.NormalMode)
		return nil
	default:
		return m.updateNormal(msg)
	}
}

// syncSaveStatus clears the save warning once a later save succeeded
func (m *Model) syncSaveStatus() {
	if m.app.LastSaveError() == nil {
		m.notifications.ClearLevel(state.LevelWarning)
	}
}
