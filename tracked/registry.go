package tracked

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"unsafe"
	"weak"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/delaneyj/tagparty/tags"
)

type propertyKind uint8

const (
	kindField propertyKind = iota
	kindComputed
)

func (k propertyKind) String() string {
	switch k {
	case kindField:
		return "field"
	case kindComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// hostKey identifies a host by address and static type. The type keeps a
// struct apart from its first field, which shares the address.
type hostKey struct {
	addr uintptr
	typ  reflect.Type
}

func keyOf[O any](obj *O) hostKey {
	return hostKey{addr: uintptr(unsafe.Pointer(obj)), typ: reflect.TypeFor[O]()}
}

// host holds the properties registered on one object.
type host struct {
	key hostKey
	// holds reports whether p is still the object the record was made for.
	// An address can be reused before the cleanup of its previous owner has
	// run. nil for hosts that are never collected, like package variables.
	holds func(p unsafe.Pointer) bool
	props map[string]*entry
}

func (h *host) live(p unsafe.Pointer) bool {
	return h.holds == nil || h.holds(p)
}

type entry struct {
	kind propertyKind
	// tag is what TagFor hands out.
	tag tags.Tag
	// self is dirtied by writes to the property itself.
	self *tags.DirtyableTag
	// deps tracks what a computed read on its last run, nil for fields.
	deps *tags.UpdatableTag
}

// Registry maps (host, property) pairs to their tags. Entries live as long as
// their host; they are dropped by a runtime cleanup once the host is
// collected. The registry never keeps a host alive.
type Registry struct {
	clock  *tags.Clock
	logger *zap.Logger

	mu    sync.Mutex
	hosts map[hostKey]*host
	size  int
}

func newRegistry(clock *tags.Clock, logger *zap.Logger) *Registry {
	return &Registry{
		clock:  clock,
		logger: logger,
		hosts:  map[hostKey]*host{},
	}
}

// Len is the number of registered properties across all live hosts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// property returns the entry for key on h, creating it on first use.
// r.mu must be held.
func (r *Registry) property(h *host, key string, kind propertyKind) (*entry, error) {
	if existing, ok := h.props[key]; ok {
		if existing.kind != kind {
			return nil, errors.Wrapf(ErrKindMismatch, "%q is a %s, not a %s", key, existing.kind, kind)
		}
		return existing, nil
	}

	e := &entry{
		kind: kind,
		self: tags.NewDirtyableTag(r.clock),
	}
	switch kind {
	case kindComputed:
		e.deps = tags.NewUpdatableTag(tags.Const)
		e.tag = tags.Combine(e.self, e.deps)
	default:
		e.tag = e.self
	}
	h.props[key] = e
	r.size++
	return e, nil
}

// drop removes h if it is still the record for its address. r.mu must be held.
func (r *Registry) drop(h *host) bool {
	if r.hosts[h.key] != h {
		return false
	}
	delete(r.hosts, h.key)
	r.size -= len(h.props)
	return true
}

func (r *Registry) lookup(hk hostKey, p unsafe.Pointer, key string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hosts[hk]
	if !ok || !h.live(p) {
		return nil, false
	}
	e, ok := h.props[key]
	return e, ok
}

// forget drops every entry of a collected host. It runs on the runtime's
// cleanup goroutine.
func (r *Registry) forget(h *host) {
	r.mu.Lock()
	dropped := r.drop(h)
	r.mu.Unlock()

	if dropped {
		r.logger.Debug("host collected",
			zap.Stringer("host", h.key.typ),
			zap.Int("properties", len(h.props)),
		)
	}
}

func register[O any](sys *System, obj *O, key string, kind propertyKind) (*entry, error) {
	if obj == nil {
		return nil, errors.Wrapf(ErrNilHost, "registering %q", key)
	}
	// Every value of a zero-sized type may share one address.
	if unsafe.Sizeof(*obj) == 0 {
		return nil, errors.Wrapf(ErrZeroSizedHost, "registering %q on %T", key, obj)
	}

	r := sys.registry
	hk, p := keyOf(obj), unsafe.Pointer(obj)

	r.mu.Lock()
	h, ok := r.hosts[hk]
	if ok && !h.live(p) {
		r.drop(h)
		ok = false
	}
	if !ok {
		h = &host{key: hk, props: map[string]*entry{}}
		// AddCleanup is a no-op for objects outside the heap. Those are never
		// collected and weak.Make refuses them.
		if runtime.AddCleanup(obj, r.forget, h) != (runtime.Cleanup{}) {
			wp := weak.Make(obj)
			h.holds = func(p unsafe.Pointer) bool { return wp.Value() == (*O)(p) }
		}
		r.hosts[hk] = h
	}
	e, err := r.property(h, key, kind)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sys.logger.Debug("property registered",
		zap.String("host", fmt.Sprintf("%T", obj)),
		zap.String("key", key),
		zap.Stringer("kind", kind),
	)
	return e, nil
}

// lookup never registers anything and never takes a weak handle on obj.
func lookup[O any](sys *System, obj *O, key string) (*entry, error) {
	if obj != nil {
		if e, ok := sys.registry.lookup(keyOf(obj), unsafe.Pointer(obj), key); ok {
			return e, nil
		}
	}
	return nil, &UntrackedPropertyError{Object: obj, Key: key}
}

// RegisterProperty makes a plain property of obj trackable. Registering the
// same property twice returns the same tag. obj must not be of a zero-sized
// type.
func RegisterProperty[O any](sys *System, obj *O, key string) (tags.Tag, error) {
	e, err := register(sys, obj, key, kindField)
	if err != nil {
		return nil, err
	}
	return e.tag, nil
}

// RegisterComputed makes a derived property of obj trackable. Its tag changes
// when the property is set directly or when anything its last evaluation
// read changes.
func RegisterComputed[O any](sys *System, obj *O, key string) (tags.Tag, error) {
	e, err := register(sys, obj, key, kindComputed)
	if err != nil {
		return nil, err
	}
	return e.tag, nil
}

// TagFor returns the tag of a registered property, or an
// *UntrackedPropertyError.
func TagFor[O any](sys *System, obj *O, key string) (tags.Tag, error) {
	e, err := lookup(sys, obj, key)
	if err != nil {
		return nil, err
	}
	return e.tag, nil
}

// DirtyFor marks a registered property as written.
func DirtyFor[O any](sys *System, obj *O, key string) error {
	e, err := lookup(sys, obj, key)
	if err != nil {
		return err
	}
	e.self.Dirty()
	return nil
}
