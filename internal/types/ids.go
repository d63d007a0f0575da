package types

// ID identifies a column or a task on the board.
// IDs are opaque: they are only ever compared for equality, never ordered
// or parsed, so any generator format is acceptable as long as it is unique.
type ID string

// None is the zero ID. It never names a column or task.
const None ID = ""

// String returns the raw identifier
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether id is the zero ID
func (id ID) IsZero() bool {
	return id == None
}
