package record

import "github.com/joshuapare/mpack/internal/obslog"

// Registry maps class names to their Class descriptors. It is a plain map
// with no internal locking, per spec.md §5 — concurrent mutation is
// undefined behavior and callers sharing a Registry across goroutines must
// serialize their own access, exactly as the teacher's hive.Hive handle
// requires of its callers.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry constructs an empty Registry. Most callers use DefaultRegistry
// instead; an explicit Registry is for tests and for callers who want
// isolated namespaces, per spec.md §9's explicit-handle guidance.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// DefaultRegistry is the process-wide registry used by the root mpack
// package's convenience functions. This package's own Encode/Decode always
// take an explicit *Registry.
var DefaultRegistry = NewRegistry()

// Register adds a new class definition. It fails if name is already
// registered, per spec.md §3.4 — re-registration under the same name is
// always an error, not a silent overwrite.
func (r *Registry) Register(name string, fields []Field) error {
	if _, exists := r.classes[name]; exists {
		return &RecordError{Kind: ErrInvalidFieldDescriptor, Class: name, Message: "class already registered"}
	}
	c, err := newClass(name, fields)
	if err != nil {
		return err
	}
	r.classes[name] = c
	obslog.L().Info("class registered", "class", name, "fields", len(fields))
	return nil
}

// Unregister removes a class definition, reporting whether it was present.
func (r *Registry) Unregister(name string) bool {
	if _, exists := r.classes[name]; !exists {
		return false
	}
	delete(r.classes, name)
	obslog.L().Info("class unregistered", "class", name)
	return true
}

// Get returns the Class registered under name, if any.
func (r *Registry) Get(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the registered class names in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for n := range r.classes {
		names = append(names, n)
	}
	return names
}

// classReachesSelf reports whether walking Class-typed fields outward from
// current, following registered NestedTypeName links, can reach start
// again. This detects a circular class reference in the registered schema
// graph itself, independent of any particular instance or decode depth, per
// spec.md §7's CircularReference note. Unregistered classes terminate the
// walk quietly; ErrUnregisteredNestedClass is reported separately at the
// point of use.
func (r *Registry) classReachesSelf(start, current string, visited map[string]bool) bool {
	if current == start {
		return true
	}
	if visited[current] {
		return false
	}
	visited[current] = true
	c, ok := r.classes[current]
	if !ok {
		return false
	}
	for _, f := range c.Fields {
		if f.DeclaredType == FieldClass && r.classReachesSelf(start, f.NestedTypeName, visited) {
			return true
		}
	}
	return false
}
