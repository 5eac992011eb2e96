package store

import (
	"context"
	"fmt"

	"github.com/vk/funcattr/internal/argexpr"
	"github.com/vk/funcattr/internal/ctxlog"
	"github.com/vk/funcattr/internal/funcref"
	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// ArgumentParseError reports that a marker's argument text failed to
// evaluate. The underlying parser diagnostics are wrapped.
type ArgumentParseError struct {
	Attribute string
	Err       error
}

func (e *ArgumentParseError) Error() string {
	return fmt.Sprintf("attribute %q: cannot evaluate arguments: %v", e.Attribute, e.Err)
}

func (e *ArgumentParseError) Unwrap() error { return e.Err }

// DuplicateAttributeError reports a second application of a non-MULTI
// attribute to the same function. The first stored value is retained.
type DuplicateAttributeError struct {
	Attribute string
	Function  string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("attribute %q: already applied to function %q", e.Attribute, e.Function)
}

// Apply runs one attribute application against the function identified by
// ref. The returned bool reports whether a handler was found: an attribute
// with no declaration in the module is left unhandled, which is a normal
// outcome and not a failure.
//
// argText is the marker's verbatim parenthesized text, nil when the marker
// carried no parentheses. For non-raw attributes it is evaluated into an
// ordered argument sequence; for raw attributes it is passed through as a
// single string value, with nil mapped to the absence sentinel.
//
// The application is atomic for the function/attribute pair: the table is
// only touched after every earlier step has succeeded. A handler error
// propagates verbatim.
func (s *Store) Apply(ctx context.Context, module string, ref funcref.Ref, attribute string, argText *string) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	decl, ok := s.reg.Resolve(module, attribute)
	if !ok {
		logger.Debug("Marker has no declared handler, leaving unhandled.",
			"module", module, "attribute", attribute)
		return false, nil
	}

	var args []cty.Value
	if decl.Spec.Raw {
		if argText == nil {
			args = []cty.Value{cty.NilVal}
		} else {
			args = []cty.Value{cty.StringVal(*argText)}
		}
	} else {
		parsed, err := argexpr.Evaluate(argText)
		if err != nil {
			return true, &ArgumentParseError{Attribute: attribute, Err: err}
		}
		args = parsed
	}

	// Snapshot the table state under the read lock; the handler must run
	// unlocked so it can query the store itself.
	s.mu.RLock()
	current, present := s.tables[ref][attribute]
	name := s.declaredNameLocked(ref)
	s.mu.RUnlock()

	if !decl.Spec.Multi && present {
		return true, &DuplicateAttributeError{Attribute: attribute, Function: name}
	}

	call := &registry.Call{Module: module, Args: args}
	if decl.Spec.WantsName {
		call.Name = name
	}
	if decl.Spec.Multi {
		call.Current = current
	}

	value, err := decl.Handler(ctx, call)
	if err != nil {
		// Handler failures propagate verbatim: no wrapping, no write.
		return true, err
	}

	if value == cty.NilVal {
		logger.Debug("Handler declined to store a value.",
			"module", module, "attribute", attribute, "function", name)
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, nowPresent := s.tables[ref][attribute]; nowPresent && !decl.Spec.Multi {
		return true, &DuplicateAttributeError{Attribute: attribute, Function: name}
	}
	if s.tables[ref] == nil {
		s.tables[ref] = make(map[string]cty.Value)
	}
	s.tables[ref][attribute] = value
	return true, nil
}
