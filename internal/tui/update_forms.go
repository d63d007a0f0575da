package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// updateForm forwards a message to the open huh form and applies the
// result once the form completes. Esc closes the form without changes.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if m.forms.Form == nil {
		m.ui.SetMode(state.NormalMode)
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		m.closeForm()
		return nil
	}

	model, cmd := m.forms.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.forms.Form = form
	}

	switch m.forms.Form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.closeForm()
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	}

	return cmd
}

// applyForm commits the values of a completed form to the store
func (m *Model) applyForm() {
	target := m.forms.Target
	switch m.ui.Mode() {
	case state.RenameColumnMode:
		m.store.RenameColumn(target, strings.TrimSpace(m.forms.Text))
	case state.EditTaskMode:
		m.store.EditTask(target, strings.TrimSpace(m.forms.Text))
	case state.DeleteColumnConfirmMode:
		if m.forms.Confirm {
			slog.Debug("deleting column", "column_id", target)
			m.store.RemoveColumn(target)
		}
	}
}

func (m *Model) closeForm() {
	m.forms.Reset()
	m.ui.SetMode(state.NormalMode)
}
