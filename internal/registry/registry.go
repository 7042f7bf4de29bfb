package registry

import (
	"fmt"
	"log/slog"
	"sort"
)

// Source tells where a looked-up entry came from.
type Source int

const (
	SourceNone Source = iota
	SourceBound
	SourceBuiltIn
)

func (s Source) String() string {
	switch s {
	case SourceBound:
		return "bound"
	case SourceBuiltIn:
		return "built-in"
	}
	return "none"
}

// Registry holds named entries of type T for a single render graph.
type Registry[T any] struct {
	builtIns map[string]T
	bound    map[string]T
}

// New creates and initializes a new Registry instance.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		builtIns: make(map[string]T),
		bound:    make(map[string]T),
	}
}

// RegisterBuiltIn registers a backend-provided node. Registering the same
// name twice is a programming error in the backend and panics.
func (r *Registry[T]) RegisterBuiltIn(name string, v T) {
	if _, exists := r.builtIns[name]; exists {
		panic(fmt.Sprintf("built-in node with name '%s' already registered", name))
	}
	slog.Debug("Registering built-in node.", "name", name)
	r.builtIns[name] = v
}

// Bind associates v with a node name, replacing any earlier binding.
func (r *Registry[T]) Bind(name string, v T) error {
	if name == "" {
		return fmt.Errorf("node name must not be empty")
	}
	r.bound[name] = v
	return nil
}

// Unbind removes the binding for name. Built-ins are unaffected.
func (r *Registry[T]) Unbind(name string) {
	delete(r.bound, name)
}

// Lookup resolves name, preferring bindings over built-ins.
func (r *Registry[T]) Lookup(name string) (T, Source, bool) {
	if v, ok := r.bound[name]; ok {
		return v, SourceBound, true
	}
	if v, ok := r.builtIns[name]; ok {
		return v, SourceBuiltIn, true
	}
	var zero T
	return zero, SourceNone, false
}

// HasBuiltIns reports whether any built-in has been registered.
func (r *Registry[T]) HasBuiltIns() bool {
	return len(r.builtIns) > 0
}

// BuiltInNames returns the registered built-in names in sorted order.
func (r *Registry[T]) BuiltInNames() []string {
	return sortedNames(r.builtIns)
}

// BoundNames returns the bound names in sorted order.
func (r *Registry[T]) BoundNames() []string {
	return sortedNames(r.bound)
}

// Unresolved returns, in sorted order and without duplicates, the names
// that resolve to nothing.
func (r *Registry[T]) Unresolved(names []string) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, n := range names {
		if _, done := seen[n]; done {
			continue
		}
		seen[n] = struct{}{}
		if _, _, ok := r.Lookup(n); !ok {
			missing = append(missing, n)
		}
	}
	sort.Strings(missing)
	return missing
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
