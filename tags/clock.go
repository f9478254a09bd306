package tags

import "go.uber.org/atomic"

// Revision is a logical timestamp issued by a Clock.
type Revision uint64

const (
	// Constant is the revision of state that never changes.
	Constant Revision = 0
	// Initial is where every clock starts.
	Initial Revision = 1
)

// Clock hands out monotonically increasing revisions. Every write to tracked
// state takes exactly one revision from it.
type Clock struct {
	current *atomic.Uint64
}

func NewClock() *Clock {
	return &Clock{current: atomic.NewUint64(uint64(Initial))}
}

var defaultClock = NewClock()

// DefaultClock is the process-wide clock used when no other is injected.
func DefaultClock() *Clock {
	return defaultClock
}

func (c *Clock) Current() Revision {
	return Revision(c.current.Load())
}

func (c *Clock) Bump() Revision {
	return Revision(c.current.Inc())
}
