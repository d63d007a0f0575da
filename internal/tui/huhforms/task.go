package huhforms

import "charm.land/huh/v2"

// CreateTaskForm creates a huh form for editing a task's content
func CreateTaskForm(content *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("content").
			Title("Edit Task").
			Placeholder("What needs doing?").
			CharLimit(500).
			Value(content),
	))
}
