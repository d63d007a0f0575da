// Package ids generates identifiers for new columns and tasks.
//
// Generators are plain objects that own their counter state. The store holds
// one and nothing else touches it, so two stores never share a sequence and
// tests can build a deterministic generator with a fixed clock.
package ids

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Supported generator formats
const (
	FormatSequence = "sequence"
	FormatULID     = "ulid"
)

// ErrUnknownFormat is returned by New for an unsupported format name
var ErrUnknownFormat = errors.New("unknown id format")

// Generator produces identifiers that never repeat for the lifetime of the
// generator, even when called many times within the same clock tick.
type Generator interface {
	Next() types.ID
}

// New returns a generator for the named format.
// An empty format selects FormatSequence.
func New(format string) (Generator, error) {
	switch format {
	case "", FormatSequence:
		return NewSequence(), nil
	case FormatULID:
		return NewULID(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
