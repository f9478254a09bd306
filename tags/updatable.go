package tags

// UpdatableTag keeps a stable identity while the tag it wraps is swapped out,
// e.g. when a computed value reads a different set of cells on each run.
type UpdatableTag struct {
	inner Tag
}

func NewUpdatableTag(initial Tag) *UpdatableTag {
	if initial == nil {
		initial = Const
	}
	return &UpdatableTag{inner: initial}
}

func (t *UpdatableTag) Update(inner Tag) {
	if inner == nil {
		inner = Const
	}
	t.inner = inner
}

func (t *UpdatableTag) Inner() Tag {
	return t.inner
}

func (t *UpdatableTag) Value() Revision {
	return t.inner.Value()
}

func (t *UpdatableTag) Validate(snapshot Revision) bool {
	return t.inner.Validate(snapshot)
}
