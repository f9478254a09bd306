// Package tracked binds revision tags to properties of host objects and
// records which of them a computation reads.
//
// A System owns the property registry and the tracking stack. Plain
// properties are Fields, derived ones are Computeds; reading either inside
// System.Track (or inside another Computed) records its tag, so the result
// can later be checked with Validate instead of being recomputed.
//
// Hosts are identified by address and type. They should be heap objects;
// package variables work but are never collected, and zero-sized hosts are
// rejected with ErrZeroSizedHost.
package tracked

import (
	"go.uber.org/zap"

	"github.com/delaneyj/tagparty/tags"
)

type System struct {
	clock    *tags.Clock
	logger   *zap.Logger
	registry *Registry
	tracker  *Tracker
}

type Option func(*System)

func WithLogger(logger *zap.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock isolates the system from the process-wide clock, mostly useful
// in tests.
func WithClock(clock *tags.Clock) Option {
	return func(s *System) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{
		clock:   tags.DefaultClock(),
		logger:  zap.NewNop(),
		tracker: &Tracker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry = newRegistry(s.clock, s.logger)
	return s
}

func (s *System) Clock() *tags.Clock {
	return s.clock
}

func (s *System) Registry() *Registry {
	return s.registry
}

func (s *System) Logger() *zap.Logger {
	return s.logger
}

// Track runs fn in a new tracking frame and returns a tag for everything fn
// read. The tag is also reported to the enclosing frame, if any.
func (s *System) Track(fn func() error) (tags.Tag, error) {
	tag, err := s.collect(fn)
	if err != nil {
		return nil, err
	}
	s.Consume(tag)
	return tag, nil
}

func (s *System) collect(fn func() error) (tags.Tag, error) {
	f := s.tracker.push(false)
	defer s.tracker.pop(f)

	if err := fn(); err != nil {
		return nil, err
	}
	return tags.Combine(f.consumed...), nil
}

// Untrack runs fn without recording any of its reads.
func (s *System) Untrack(fn func()) {
	f := s.tracker.push(true)
	defer s.tracker.pop(f)
	fn()
}

// Consume reports tag to the innermost open frame. Outside of Track it does
// nothing.
func (s *System) Consume(tag tags.Tag) {
	s.tracker.consume(tag)
}

func (s *System) IsTracking() bool {
	return s.tracker.IsTracking()
}

func (s *System) Depth() int {
	return s.tracker.Depth()
}
