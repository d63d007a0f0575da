package ids

import (
	"strconv"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Sequence generates ids of the form "<unix-millis>-<counter>".
// The millisecond part is only a coarse hint; uniqueness comes from the
// counter, which strictly increases for every call.
type Sequence struct {
	mu      sync.Mutex
	now     func() time.Time
	counter uint64
}

// SequenceOption configures a Sequence
type SequenceOption func(*Sequence)

// WithClock replaces the wall clock used for the time component
func WithClock(now func() time.Time) SequenceOption {
	return func(s *Sequence) {
		s.now = now
	}
}

// NewSequence creates a Sequence starting at counter 1
func NewSequence(opts ...SequenceOption) *Sequence {
	s := &Sequence{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next identifier
func (s *Sequence) Next() types.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	ms := s.now().UnixMilli()
	return types.ID(strconv.FormatInt(ms, 10) + "-" + strconv.FormatUint(s.counter, 10))
}
