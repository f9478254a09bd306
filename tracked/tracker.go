package tracked

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/tagparty/tags"
)

// frame collects the tags consumed by one tracked computation.
type frame struct {
	paused   bool
	seen     mapset.Set[tags.Tag]
	consumed []tags.Tag
}

func (f *frame) add(tag tags.Tag) {
	if f.paused || tags.IsConst(tag) {
		return
	}
	if f.seen.Add(tag) {
		f.consumed = append(f.consumed, tag)
	}
}

// Tracker is the stack of open tracking frames. Every push is matched by
// exactly one pop, even when the computation fails.
type Tracker struct {
	frames []*frame
}

func (t *Tracker) push(paused bool) *frame {
	f := &frame{paused: paused}
	if !paused {
		f.seen = mapset.NewThreadUnsafeSet[tags.Tag]()
	}
	t.frames = append(t.frames, f)
	return f
}

func (t *Tracker) pop(f *frame) {
	lastIdx := len(t.frames) - 1
	if lastIdx < 0 || t.frames[lastIdx] != f {
		panic("tracked: unbalanced tracking frames")
	}
	t.frames[lastIdx] = nil
	t.frames = t.frames[:lastIdx]
}

func (t *Tracker) consume(tag tags.Tag) {
	if len(t.frames) == 0 || tag == nil {
		return
	}
	t.frames[len(t.frames)-1].add(tag)
}

// Depth is the number of open frames, paused ones included.
func (t *Tracker) Depth() int {
	return len(t.frames)
}

// IsTracking reports whether a read right now would be recorded.
func (t *Tracker) IsTracking() bool {
	return len(t.frames) > 0 && !t.frames[len(t.frames)-1].paused
}
