package ids

import (
	"crypto/rand"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ULID generates lexicographically sortable ULIDs.
// Monotonic entropy makes ids minted in the same millisecond strictly
// increase instead of relying on randomness alone.
type ULID struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
	last    ulid.ULID
}

// ULIDOption configures a ULID generator
type ULIDOption func(*ulidConfig)

type ulidConfig struct {
	now     func() time.Time
	entropy io.Reader
}

// WithULIDClock replaces the wall clock used for the timestamp component
func WithULIDClock(now func() time.Time) ULIDOption {
	return func(c *ulidConfig) {
		c.now = now
	}
}

// WithEntropy replaces the random source; tests pass a seeded reader
func WithEntropy(r io.Reader) ULIDOption {
	return func(c *ulidConfig) {
		c.entropy = r
	}
}

// NewULID creates a ULID generator
func NewULID(opts ...ULIDOption) *ULID {
	cfg := ulidConfig{now: time.Now, entropy: rand.Reader}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ULID{
		now:     cfg.now,
		entropy: ulid.Monotonic(cfg.entropy, 0),
	}
}

// Next returns the next identifier
func (g *ULID) Next() types.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(g.now())
	// A clock that steps backwards would reset the monotonic run, so pin
	// the timestamp to the last issued one.
	if ms < g.last.Time() {
		ms = g.last.Time()
	}

	id, err := ulid.New(ms, g.entropy)
	if err != nil {
		// Entropy overflow within one millisecond: move to the next one.
		slog.Debug("ulid entropy overflow, advancing timestamp", "error", err)
		id, err = ulid.New(ms+1, g.entropy)
		if err != nil {
			id = ulid.MustNew(ms+1, rand.Reader)
		}
	}
	g.last = id
	return types.ID(id.String())
}
