package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// updateSearch handles keys while the search box has focus.
// The filter follows the query as it is typed; enter keeps it, esc drops it.
func (m *Model) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.searchInput.Blur()
		m.ui.SetMode(state.NormalMode)
		return nil
	case "esc":
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.search.Clear()
		m.ui.SetMode(state.NormalMode)
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.search.Query = m.searchInput.Value()
	return cmd
}
