package stf

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/stewi1014/stf/encio"
)

// DefaultRegistry is the Registry used by Unmarshal, and by Decoders created with a nil Registry.
var DefaultRegistry = NewRegistry()

// Register registers fn under tag in DefaultRegistry.
// It is a shortcut for DefaultRegistry.Register()
func Register(tag Tag, name string, fn Reconstructor) error {
	return DefaultRegistry.Register(tag, name, fn)
}

// MustRegister is Register, but panics on error.
// It is intended for use in init(), where a tag collision is a fatal configuration error.
func MustRegister(tag Tag, name string, fn Reconstructor) {
	DefaultRegistry.MustRegister(tag, name, fn)
}

type entry struct {
	name string
	fn   Reconstructor
}

// NewRegistry returns a new Registry with the scalar Nodes pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[Tag]entry),
	}

	for _, b := range builtin {
		r.MustRegister(b.tag, b.name, b.reconstructor())
	}

	return r
}

// Registry maps tags to Reconstructors.
//
// It has two phases. While being populated, Register and Lookup are guarded by a mutex.
// Seal, which the first decode calls implicitly, ends that phase;
// the table is published as an immutable map, Lookup no longer locks, and Register returns ErrSealed.
// Entries are never removed or replaced.
type Registry struct {
	mutex   sync.Mutex
	entries map[Tag]entry
	sealed  atomic.Pointer[map[Tag]entry]
}

// Register binds fn to tag.
// It returns ErrDuplicateTag if tag is already bound, and ErrSealed if r has been sealed.
func (r *Registry) Register(tag Tag, name string, fn Reconstructor) error {
	if fn == nil {
		return encio.Errorf(encio.ErrBadType, "nil Reconstructor for tag %v", tag)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed.Load() != nil {
		return encio.Errorf(encio.ErrSealed, "cannot register %v (%v)", name, tag)
	}

	if r.entries == nil {
		r.entries = make(map[Tag]entry)
	}
	if old, ok := r.entries[tag]; ok {
		return encio.Errorf(encio.ErrDuplicateTag, "tag %v is bound to %v, cannot bind %v", tag, old.name, name)
	}

	r.entries[tag] = entry{name: name, fn: fn}
	encio.Log.Debug().Stringer("tag", tag).Str("name", name).Msg("registered type")
	return nil
}

// MustRegister is Register, but panics on error.
func (r *Registry) MustRegister(tag Tag, name string, fn Reconstructor) {
	if err := r.Register(tag, name, fn); err != nil {
		panic(err)
	}
}

// Seal ends the registration phase. It is safe to call more than once.
func (r *Registry) Seal() {
	if r.sealed.Load() != nil {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed.Load() != nil {
		return
	}

	table := make(map[Tag]entry, len(r.entries))
	for tag, e := range r.entries {
		table[tag] = e
	}
	r.sealed.Store(&table)
	encio.Log.Debug().Int("types", len(table)).Msg("registry sealed")
}

// Sealed reports whether r has been sealed.
func (r *Registry) Sealed() bool {
	return r.sealed.Load() != nil
}

func (r *Registry) get(tag Tag) (entry, bool) {
	if table := r.sealed.Load(); table != nil {
		e, ok := (*table)[tag]
		return e, ok
	}

	r.mutex.Lock()
	e, ok := r.entries[tag]
	r.mutex.Unlock()
	return e, ok
}

// Lookup returns the Reconstructor bound to tag, or ErrUnknownType.
func (r *Registry) Lookup(tag Tag) (Reconstructor, error) {
	e, ok := r.get(tag)
	if !ok {
		return nil, encio.Errorf(encio.ErrUnknownType, "tag %v is not registered", tag)
	}
	return e.fn, nil
}

// Name returns the name tag was registered with.
func (r *Registry) Name(tag Tag) (string, bool) {
	e, ok := r.get(tag)
	return e.name, ok
}

// Tags returns every registered tag in ascending order.
func (r *Registry) Tags() []Tag {
	var table map[Tag]entry
	if sealed := r.sealed.Load(); sealed != nil {
		table = *sealed
	} else {
		r.mutex.Lock()
		defer r.mutex.Unlock()
		table = r.entries
	}

	tags := make([]Tag, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
