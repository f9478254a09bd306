package tags

// CombinatorTag is changed whenever any of its children is.
type CombinatorTag struct {
	children []Tag
}

// Combine returns a tag for "any of tt changed". No tags combine to Const and
// a single tag is returned as is.
func Combine(tt ...Tag) Tag {
	switch len(tt) {
	case 0:
		return Const
	case 1:
		return tt[0]
	}

	children := make([]Tag, len(tt))
	copy(children, tt)
	return &CombinatorTag{children: children}
}

func (t *CombinatorTag) Children() []Tag {
	return t.children
}

// Value is the newest revision among the children so a snapshot taken from
// it catches a later change in any child.
func (t *CombinatorTag) Value() Revision {
	newest := Constant
	for _, child := range t.children {
		if v := child.Value(); v > newest {
			newest = v
		}
	}
	return newest
}

func (t *CombinatorTag) Validate(snapshot Revision) bool {
	for _, child := range t.children {
		if !child.Validate(snapshot) {
			return false
		}
	}
	return true
}
