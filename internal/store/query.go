package store

import (
	"fmt"

	"github.com/vk/funcattr/internal/funcref"
	"github.com/zclconf/go-cty/cty"
)

// UnknownFunctionError reports a by-name lookup that found no function in
// the module's scope.
type UnknownFunctionError struct {
	Module   string
	Function string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("no function named %q in module %q", e.Function, e.Module)
}

// Get returns the stored value for one attribute of the function. The bool
// is false when the function has no table or the table lacks the attribute;
// absence is not an error.
func (s *Store) Get(ref funcref.Ref, attribute string) (cty.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.tables[ref][attribute]
	return value, ok
}

// GetAll returns a shallow copy of the function's attribute table, or an
// empty map when the function has none. Callers may freely mutate the
// result; the live table is never handed out.
func (s *Store) GetAll(ref funcref.Ref) map[string]cty.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table := s.tables[ref]
	out := make(map[string]cty.Value, len(table))
	for name, value := range table {
		out[name] = value
	}
	return out
}

// Lookup resolves a function name against a module's scope. A name that was
// never registered yields an UnknownFunctionError.
func (s *Store) Lookup(module, function string) (funcref.Ref, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.scopes[module][function]
	if !ok {
		return funcref.Ref{}, &UnknownFunctionError{Module: module, Function: function}
	}
	return ref, nil
}

// GetByName is Get after resolving the function by name.
func (s *Store) GetByName(module, function, attribute string) (cty.Value, bool, error) {
	ref, err := s.Lookup(module, function)
	if err != nil {
		return cty.NilVal, false, err
	}
	value, ok := s.Get(ref, attribute)
	return value, ok, nil
}

// GetAllByName is GetAll after resolving the function by name.
func (s *Store) GetAllByName(module, function string) (map[string]cty.Value, error) {
	ref, err := s.Lookup(module, function)
	if err != nil {
		return nil, err
	}
	return s.GetAll(ref), nil
}

// Functions returns the names registered in a module's scope. Used by the
// report renderer; order is unspecified.
func (s *Store) Functions(module string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.scopes[module]))
	for name := range s.scopes[module] {
		out = append(out, name)
	}
	return out
}

// Modules returns the module handles that have at least one named function
// registered. Order is unspecified.
func (s *Store) Modules() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.scopes))
	for module := range s.scopes {
		out = append(out, module)
	}
	return out
}
