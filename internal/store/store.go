package store

import (
	"sync"

	"github.com/vk/funcattr/internal/funcref"
	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Store maps function handles to their attribute tables and resolves
// attribute applications against a handler registry.
type Store struct {
	reg *registry.Registry

	mu     sync.RWMutex
	names  map[funcref.Ref]string                // declared name, "" for anonymous
	scopes map[string]map[string]funcref.Ref     // module -> function name -> ref
	tables map[funcref.Ref]map[string]cty.Value  // ref -> attribute name -> value
}

// New creates an empty store backed by the given handler registry.
func New(reg *registry.Registry) *Store {
	return &Store{
		reg:    reg,
		names:  make(map[funcref.Ref]string),
		scopes: make(map[string]map[string]funcref.Ref),
		tables: make(map[funcref.Ref]map[string]cty.Value),
	}
}

// RegisterFunction issues a handle for a named function defined in the given
// module and binds the name into the module's scope. Registering a name that
// is already bound rebinds the scope to the new handle (source order wins);
// the earlier handle and any table it accumulated stay valid.
func (s *Store) RegisterFunction(module, name string) funcref.Ref {
	ref := funcref.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[ref] = name
	if s.scopes[module] == nil {
		s.scopes[module] = make(map[string]funcref.Ref)
	}
	s.scopes[module][name] = ref
	return ref
}

// RegisterAnonymous issues a handle for a function with no declared name.
// NAME handlers applied to it see the fixed placeholder.
func (s *Store) RegisterAnonymous(module string) funcref.Ref {
	ref := funcref.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[ref] = ""
	return ref
}

// DeclaredName returns the name the environment registered for the handle,
// or the anonymous placeholder. The reported name is a property of the
// definition, independent of which variable holds the handle.
func (s *Store) DeclaredName(ref funcref.Ref) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.declaredNameLocked(ref)
}

func (s *Store) declaredNameLocked(ref funcref.Ref) string {
	if name, ok := s.names[ref]; ok && name != "" {
		return name
	}
	return funcref.AnonymousName
}
