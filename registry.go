package bibfmt

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Constructor builds a Formatter from configuration.
type Constructor func(cfg Config) (Formatter, error)

// Registry maps variant names to constructors. The zero value is not
// usable; create instances with NewRegistry.
type Registry struct {
	mu           sync.RWMutex
	constructors map[Variant]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[Variant]Constructor)}
}

// Register adds a constructor under name. Empty and duplicate names
// return an error.
func (r *Registry) Register(name Variant, ctor Constructor) error {
	if name == "" {
		return fmt.Errorf("bibfmt: formatter name is required")
	}
	if ctor == nil {
		return fmt.Errorf("bibfmt: constructor for %q is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("bibfmt: formatter %q already registered", name)
	}
	r.constructors[name] = ctor
	return nil
}

// MustRegister panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegister(name Variant, ctor Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Get retrieves the constructor for name. Unknown names return an
// ErrInvalidFormatter error listing the registered alternatives.
func (r *Registry) Get(name Variant) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered formatters: %s)",
			ErrInvalidFormatter, name, joinVariants(r.names()))
	}
	return ctor, nil
}

// Names returns the sorted registered variant names.
func (r *Registry) Names() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

// Has reports whether name is registered.
func (r *Registry) Has(name Variant) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

// names assumes the caller holds at least a read lock.
func (r *Registry) names() []Variant {
	out := make([]Variant, 0, len(r.constructors))
	for name := range r.constructors {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinVariants(names []Variant) string {
	strs := make([]string, len(names))
	for i, n := range names {
		strs[i] = string(n)
	}
	return strings.Join(strs, ", ")
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.MustRegister(Template, func(cfg Config) (Formatter, error) { return NewTemplateFormatter(cfg) })
	r.MustRegister(Sandbox, func(cfg Config) (Formatter, error) { return NewSandboxFormatter(cfg) })
	r.MustRegister(Custom, func(cfg Config) (Formatter, error) { return NewCustomKeyFormatter(cfg) })
	return r
}()

// DefaultRegistry returns the process registry, populated at init with
// the Template, Sandbox, and Custom variants. Callers may Register
// additional variants on it.
func DefaultRegistry() *Registry { return defaultRegistry }
