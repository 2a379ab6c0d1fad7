package check

import (
	"fmt"
	"sort"
	"sync"
)

// Predicate evaluates one row. It receives the values of the declared
// columns in declared order and reports whether the row passes. A returned
// error (or a panic) is treated by the engine as a row failure.
type Predicate func(values []any) (bool, error)

// PredicateDef describes a registered predicate.
type PredicateDef struct {
	Name        string
	Description string
	// Arity is the required number of declared columns; -1 accepts any.
	Arity int
	Fn    Predicate
}

// Registry stores named predicates for the compiler to resolve.
type Registry struct {
	mu    sync.RWMutex
	preds map[string]PredicateDef
}

// NewRegistry creates an empty predicate registry.
func NewRegistry() *Registry {
	return &Registry{preds: make(map[string]PredicateDef)}
}

// Register adds a predicate definition. It fails on empty names, nil
// functions, and duplicate registrations.
func (r *Registry) Register(def PredicateDef) error {
	if def.Name == "" {
		return fmt.Errorf("predicate name is required")
	}
	if def.Fn == nil {
		return fmt.Errorf("predicate %q: function is required", def.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.preds[def.Name]; exists {
		return fmt.Errorf("predicate %q already registered", def.Name)
	}
	r.preds[def.Name] = def
	return nil
}

// MustRegister is Register that panics on error.
// Call it from init() or package setup code.
func (r *Registry) MustRegister(def PredicateDef) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition of a named predicate.
func (r *Registry) Lookup(name string) (PredicateDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.preds[name]
	return def, ok
}

// Defs returns all registered predicates sorted by name.
func (r *Registry) Defs() []PredicateDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]PredicateDef, 0, len(r.preds))
	for _, def := range r.preds {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Names returns all registered predicate names, sorted.
func (r *Registry) Names() []string {
	defs := r.Defs()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}

// Count returns the number of registered predicates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.preds)
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry pre-populated with the built-in
// predicates.
func Default() *Registry {
	return defaultRegistry
}
