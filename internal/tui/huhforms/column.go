// Package huhforms builds the huh forms used by the TUI.
package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
)

// CreateColumnForm creates a huh form for renaming a column.
// The form contains a single input field for the column title.
// An empty title is allowed.
func CreateColumnForm(title *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Rename Column").
			Placeholder("Enter column title...").
			CharLimit(100).
			Value(title),
	))
}

// CreateDeleteColumnForm asks before a column and its tasks are removed
func CreateDeleteColumnForm(confirm *bool, title string, taskCount int) *huh.Form {
	description := "The column is empty."
	if taskCount > 0 {
		description = fmt.Sprintf("This will also delete %d task(s).", taskCount)
	}
	if title == "" {
		title = "untitled"
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete column %q?", title)).
			Description(description).
			Affirmative("Delete").
			Negative("Cancel").
			Value(confirm),
	))
}
