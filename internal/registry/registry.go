package registry

import (
	"fmt"
	"log/slog"
	"sync"
)

// Declared is a resolved attribute declaration: its immutable Spec and the
// handler that computes stored values.
type Declared struct {
	Name    string
	Spec    Spec
	Handler HandlerFunc
}

// Registry holds the registered Go handlers and the declared attributes for
// a single application instance.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	attrs    map[string]map[string]*Declared // defining module -> attribute name
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
		attrs:    make(map[string]map[string]*Declared),
	}
}

// Declare registers an attribute for a defining module. The flag tokens are
// validated via ParseFlags; a failed validation registers nothing.
//
// Declare is idempotent: re-declaring the same module/name pair with an
// equal Spec is a no-op. A conflicting re-declaration is an error, since a
// Spec is immutable once declared.
func (r *Registry) Declare(module, name string, flags []string, fn HandlerFunc) error {
	spec, err := ParseFlags(name, flags)
	if err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("attribute %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.attrs[module][name]; ok {
		if existing.Spec == spec {
			return nil
		}
		return fmt.Errorf("attribute %q: redeclared in module %q with a different spec", name, module)
	}

	if r.attrs[module] == nil {
		r.attrs[module] = make(map[string]*Declared)
	}
	r.attrs[module][name] = &Declared{Name: name, Spec: spec, Handler: fn}
	slog.Debug("Declared attribute.", "module", module, "name", name,
		"raw", spec.Raw, "multi", spec.Multi, "wants_name", spec.WantsName)
	return nil
}

// Resolve looks up a declared attribute within a defining module. A missing
// declaration is a normal outcome, not an error: the marker is simply
// unhandled.
func (r *Registry) Resolve(module, name string) (*Declared, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.attrs[module][name]
	return d, ok
}

// DeclaredCount returns the number of attributes declared across all
// modules. Used for startup logging.
func (r *Registry) DeclaredCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, byName := range r.attrs {
		n += len(byName)
	}
	return n
}
