package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/drag"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.ReportFocus = true
	view.WindowTitle = "tablero"

	// Wait for terminal size to be initialized
	if m.ui.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(components.RenderTitleBar(m.search.Query, m.ui.Width())),
	}

	for _, col := range m.layout.columns {
		layerStack = append(layerStack,
			lipgloss.NewLayer(col.rendered).X(col.bounds.Min.X).Y(col.bounds.Min.Y))
	}
	if len(m.layout.columns) == 0 {
		hint := components.SubtleStyle.Render("No columns yet. Click the button or press " +
			m.keys.CreateColumn.Help().Key + " to add one.")
		layerStack = append(layerStack, lipgloss.NewLayer(hint).X(1).Y(boardTop+3))
	}
	if !m.layout.addColumn.Empty() {
		layerStack = append(layerStack, lipgloss.NewLayer(components.RenderAddColumnButton()).
			X(m.layout.addColumn.Min.X).Y(m.layout.addColumn.Min.Y))
	}

	layerStack = append(layerStack,
		lipgloss.NewLayer(m.renderStatusBar()).Y(max(m.ui.Height()-1, boardTop+m.layout.boardHeight)))

	if overlay := m.renderDragOverlay(); overlay != nil {
		layerStack = append(layerStack, overlay.Z(1))
	}
	if modal := m.renderModal(); modal != nil {
		layerStack = append(layerStack, modal.Z(2))
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// renderStatusBar shows the search box while searching, otherwise key
// hints, with the most severe notification on the right
func (m Model) renderStatusBar() string {
	var left string
	if m.ui.Mode() == state.SearchMode {
		left = m.searchInput.View()
	} else {
		left = m.help.ShortHelpView(m.shortHelp())
	}

	var right string
	if n, ok := m.notifications.Top(); ok {
		right = notifications.RenderInlineFromState(n)
	}

	return components.RenderStatusBar(left, right, m.ui.Width())
}

func (m Model) shortHelp() []key.Binding {
	if m.search.IsActive() {
		return append(m.keys.ShortHelp(), m.keys.ClearSearch)
	}
	return m.keys.ShortHelp()
}

// renderDragOverlay draws a copy of the dragged column header or card
// next to the pointer
func (m Model) renderDragOverlay() *lipgloss.Layer {
	if !m.sensor.Dragging() {
		return nil
	}

	var content string
	switch subject := m.controller.Session().Subject().(type) {
	case drag.ColumnSubject:
		col, ok := m.store.Column(subject.Column.ID)
		if !ok {
			return nil
		}
		content = components.RenderColumnHeader(col, m.store.Snapshot().TaskCount(col.ID))
	case drag.TaskSubject:
		task, ok := m.store.Task(subject.Task.ID)
		if !ok {
			return nil
		}
		content = components.RenderTask(task, components.ColumnWidth-4, components.CardFloating)
	default:
		return nil
	}

	p := m.sensor.Pointer()
	return layers.CreateFloatingLayer(content, p.X+1, p.Y+1, m.ui.Width(), m.ui.Height())
}

// renderModal draws the open form or the help screen centered on the board
func (m Model) renderModal() *lipgloss.Layer {
	var content string
	switch m.ui.Mode() {
	case state.RenameColumnMode, state.EditTaskMode:
		if m.forms.Form == nil {
			return nil
		}
		content = components.FormBoxStyle.
			Width(min(max(m.ui.Width()/2, 40), m.ui.Width())).
			Render(m.forms.Form.View())
	case state.DeleteColumnConfirmMode:
		if m.forms.Form == nil {
			return nil
		}
		content = components.DeleteBoxStyle.Render(m.forms.Form.View())
	case state.HelpMode:
		content = m.renderHelp()
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.ui.Width(), m.ui.Height())
}
