package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/types"
)

// FormState holds the open huh form and the values it is bound to.
// Only one form is open at a time.
type FormState struct {
	Form *huh.Form

	// Target is the column or task the form edits
	Target types.ID

	// Bound values
	Text    string
	Confirm bool
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Open installs a form editing target
func (s *FormState) Open(form *huh.Form, target types.ID) {
	s.Form = form
	s.Target = target
}

// Reset closes the form and clears bound values
func (s *FormState) Reset() {
	s.Form = nil
	s.Target = types.None
	s.Text = ""
	s.Confirm = false
}
