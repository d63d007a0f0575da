package state

import (
	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// SearchState manages the search filter.
// While the query is non-empty only tasks whose content fuzzily matches it
// are shown; the board order is unaffected.
type SearchState struct {
	Query string
}

// NewSearchState creates a new SearchState with no filter
func NewSearchState() *SearchState {
	return &SearchState{}
}

// IsActive reports whether a filter is applied
func (s *SearchState) IsActive() bool {
	return s.Query != ""
}

// Clear removes the filter
func (s *SearchState) Clear() {
	s.Query = ""
}

// Matches returns the ids of the tasks that pass the filter.
// A nil map means no filter is applied.
func (s *SearchState) Matches(tasks []models.Task) map[types.ID]bool {
	if !s.IsActive() {
		return nil
	}

	contents := make([]string, len(tasks))
	for i, task := range tasks {
		contents[i] = task.Content
	}

	matched := make(map[types.ID]bool)
	for _, match := range fuzzy.Find(s.Query, contents) {
		matched[tasks[match.Index].ID] = true
	}
	return matched
}

// Filter returns tasks that pass the filter, preserving order
func (s *SearchState) Filter(tasks []models.Task) []models.Task {
	matched := s.Matches(tasks)
	if matched == nil {
		return tasks
	}
	filtered := make([]models.Task, 0, len(matched))
	for _, task := range tasks {
		if matched[task.ID] {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
