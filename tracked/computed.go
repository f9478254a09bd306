package tracked

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/delaneyj/tagparty/tags"
)

type computedOptions struct {
	dependencies []string
}

type ComputedOption func(*computedOptions)

// WithDependencies declares properties of the same host that the computed
// depends on regardless of what its getter reads. They seed every
// evaluation; reads made by the getter are added on top.
func WithDependencies(keys ...string) ComputedOption {
	return func(o *computedOptions) {
		o.dependencies = append(o.dependencies, keys...)
	}
}

// Computed is a derived tracked property. Every Get runs the getter in its
// own tracking frame and points the property's tag at what was read.
type Computed[T any] struct {
	sys     *System
	key     string
	entry   *entry
	getter  func() (T, error)
	setter  func(T) error
	deps    []string
	resolve func(key string) (tags.Tag, error)
}

func NewComputed[O, T any](sys *System, owner *O, key string, getter func() (T, error), opts ...ComputedOption) (*Computed[T], error) {
	options := &computedOptions{}
	for _, opt := range opts {
		opt(options)
	}

	e, err := register(sys, owner, key, kindComputed)
	if err != nil {
		return nil, err
	}

	c := &Computed[T]{
		sys:    sys,
		key:    key,
		entry:  e,
		getter: getter,
		deps:   options.dependencies,
		resolve: func(dep string) (tags.Tag, error) {
			return TagFor(sys, owner, dep)
		},
	}
	return c, nil
}

// MustComputed is NewComputed that panics on error.
func MustComputed[O, T any](sys *System, owner *O, key string, getter func() (T, error), opts ...ComputedOption) *Computed[T] {
	c, err := NewComputed(sys, owner, key, getter, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// OnSet makes the computed writable. Setting dirties the computed itself and
// then hands the value to fn.
func (c *Computed[T]) OnSet(fn func(T) error) *Computed[T] {
	c.setter = fn
	return c
}

func (c *Computed[T]) Key() string {
	return c.key
}

// Tag keeps its identity across evaluations.
func (c *Computed[T]) Tag() tags.Tag {
	return c.entry.tag
}

func (c *Computed[T]) Get() (T, error) {
	var value T

	consumed, err := c.sys.collect(func() error {
		for _, dep := range c.deps {
			tag, err := c.resolve(dep)
			if err != nil {
				return errors.Wrapf(err, "resolving dependency %q of %q", dep, c.key)
			}
			c.sys.Consume(tag)
		}

		v, err := c.getter()
		if err != nil {
			return errors.Wrapf(err, "computing %q", c.key)
		}
		value = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	c.entry.deps.Update(consumed)
	if ce := c.sys.logger.Check(zap.DebugLevel, "computed"); ce != nil {
		ce.Write(
			zap.String("key", c.key),
			zap.Uint64("revision", uint64(consumed.Value())),
			zap.Int("dependencies", dependencyCount(consumed)),
		)
	}

	c.sys.Consume(c.entry.tag)
	return value, nil
}

func (c *Computed[T]) Set(v T) error {
	if c.setter == nil {
		return errors.Wrapf(ErrReadOnly, "setting %q", c.key)
	}
	c.entry.self.Dirty()
	return c.setter(v)
}

func dependencyCount(tag tags.Tag) int {
	switch t := tag.(type) {
	case *tags.CombinatorTag:
		return len(t.Children())
	default:
		if tags.IsConst(tag) {
			return 0
		}
		return 1
	}
}
