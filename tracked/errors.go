package tracked

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrKindMismatch = errors.New("property already registered with a different kind")
	ErrReadOnly     = errors.New("computed property has no setter")
	ErrNilHost      = errors.New("host object is nil")
	// ErrZeroSizedHost rejects hosts whose values have no identity of their
	// own.
	ErrZeroSizedHost = errors.New("host object is zero-sized")
)

// UntrackedPropertyError is returned when a tag is requested for a property
// that was never registered. It tells "not trackable" apart from "tracked
// but unchanged".
type UntrackedPropertyError struct {
	Object any
	Key    string
}

func (e *UntrackedPropertyError) Error() string {
	return fmt.Sprintf("property %q on %T is not tracked, register it before reading its tag", e.Key, e.Object)
}
