package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// helpMarkdown builds the help screen from the active key bindings
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# tablero\n\n")
	b.WriteString("## Mouse\n\n")
	b.WriteString("- Drag a column by its title to reorder columns\n")
	b.WriteString("- Drag a card onto another card or into a column to move it\n")
	b.WriteString("- Click a card or column to select it\n")
	fmt.Fprintf(&b, "- Click `%s` or `%s` to add\n\n", components.AddTaskLabel, components.AddColumnLabel)
	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			writeBinding(&b, binding)
		}
	}
	b.WriteString("\nPress any key to close.\n")
	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	keyName := h.Key
	if keyName == " " {
		keyName = "space"
	}
	fmt.Fprintf(b, "| `%s` | %s |\n", keyName, h.Desc)
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	width := min(max(m.ui.Width()-8, 30), 72)
	content := components.RenderMarkdown(m.helpMarkdown(), width)
	return components.HelpBoxStyle.Render(content)
}
