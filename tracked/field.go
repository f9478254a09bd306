package tracked

import "github.com/delaneyj/tagparty/tags"

// Field is a plain tracked property. Reads are recorded by the open tracking
// frame, writes dirty the property's tag.
type Field[T any] struct {
	sys   *System
	key   string
	tag   *tags.DirtyableTag
	value T
}

// NewField registers key on owner and returns a field holding initial.
func NewField[O, T any](sys *System, owner *O, key string, initial T) (*Field[T], error) {
	e, err := register(sys, owner, key, kindField)
	if err != nil {
		return nil, err
	}
	return &Field[T]{
		sys:   sys,
		key:   key,
		tag:   e.self,
		value: initial,
	}, nil
}

// MustField is NewField that panics on error.
func MustField[O, T any](sys *System, owner *O, key string, initial T) *Field[T] {
	f, err := NewField(sys, owner, key, initial)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field[T]) Key() string {
	return f.key
}

func (f *Field[T]) Tag() tags.Tag {
	return f.tag
}

func (f *Field[T]) Get() T {
	f.sys.Consume(f.tag)
	return f.value
}

// Set stores v and dirties the field. Values are never compared, every write
// counts as a change.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.tag.Dirty()
}
