// Package memo caches the result of a tracked computation and only runs it
// again once a snapshot of what it read has gone stale.
package memo

import (
	"github.com/delaneyj/tagparty/tags"
	"github.com/delaneyj/tagparty/tracked"
)

type CacheState int

const (
	CacheDirty CacheState = iota // never run, or the last run failed
	CacheCheck                   // holds a value, validate the snapshot before using it
)

type Memo[T any] struct {
	sys      *tracked.System
	fn       func() (T, error)
	value    T
	tag      tags.Tag
	snapshot tags.Revision
	state    CacheState
	runs     int
}

func New[T any](sys *tracked.System, fn func() (T, error)) *Memo[T] {
	return &Memo[T]{sys: sys, fn: fn, state: CacheDirty}
}

// Get returns the cached value while nothing it read has changed and runs fn
// again otherwise. Inside an open tracking frame the memo's tag is reported
// either way, so memos nest.
func (m *Memo[T]) Get() (T, error) {
	if m.Stale() {
		var value T
		tag, err := m.sys.Track(func() (err error) {
			value, err = m.fn()
			return err
		})
		m.runs++
		if err != nil {
			m.state = CacheDirty
			var zero T
			return zero, err
		}
		m.value = value
		m.tag = tag
		m.snapshot = tag.Value()
		m.state = CacheCheck
		return m.value, nil
	}

	m.sys.Consume(m.tag)
	return m.value, nil
}

// Stale reports whether the next Get has to run fn.
func (m *Memo[T]) Stale() bool {
	return m.state == CacheDirty || !m.tag.Validate(m.snapshot)
}

func (m *Memo[T]) State() CacheState {
	return m.state
}

// Tag is nil until the first successful run.
func (m *Memo[T]) Tag() tags.Tag {
	return m.tag
}

// Runs counts how many times fn was called.
func (m *Memo[T]) Runs() int {
	return m.runs
}

// Invalidate forces the next Get to run fn.
func (m *Memo[T]) Invalidate() {
	m.state = CacheDirty
}
