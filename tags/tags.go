// Package tags implements revision tags: cheap summaries of "when did this
// state last change" that can be snapshotted with Value and checked later
// with Validate, without recomputing anything derived from the state.
package tags

// Tag is implemented by everything that can be snapshotted and validated.
//
// A snapshot taken with Value stays valid until some state behind the tag is
// written after the snapshot was taken.
type Tag interface {
	Value() Revision
	Validate(snapshot Revision) bool
}

type constTag struct{}

func (constTag) Value() Revision          { return Constant }
func (constTag) Validate(_ Revision) bool { return true }

// Const never changes. It is what an empty set of dependencies combines to.
var Const Tag = constTag{}

// IsConst reports whether t is the always valid tag.
func IsConst(t Tag) bool {
	_, ok := t.(constTag)
	return ok
}

// DirtyableTag is bound to a single mutable cell.
type DirtyableTag struct {
	clock     *Clock
	lastDirty Revision
}

func NewDirtyableTag(clock *Clock) *DirtyableTag {
	if clock == nil {
		clock = defaultClock
	}
	return &DirtyableTag{
		clock:     clock,
		lastDirty: clock.Current(),
	}
}

// Dirty marks the cell as written. It advances the clock, so any snapshot
// taken before the call is older than the new revision.
func (t *DirtyableTag) Dirty() {
	t.lastDirty = t.clock.Bump()
}

func (t *DirtyableTag) Value() Revision {
	return t.lastDirty
}

func (t *DirtyableTag) Validate(snapshot Revision) bool {
	return t.lastDirty <= snapshot
}
