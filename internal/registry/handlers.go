package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"
)

// Call carries the inputs for one handler invocation, in the order the
// dispatch path assembles them: owner module, declared name (NAME handlers
// only), current stored value (MULTI handlers only), then the arguments.
type Call struct {
	// Module is the handle of the module that owns the annotated function.
	Module string

	// Name is the annotated function's declared name. It is populated only
	// for handlers declared with NAME; anonymous functions report the fixed
	// placeholder.
	Name string

	// Current is the value already stored for this function/attribute pair.
	// It is populated only for handlers declared with MULTI and is
	// cty.NilVal on the first application.
	Current cty.Value

	// Args holds the evaluated marker arguments in order. For RAWDATA
	// handlers it holds exactly one element: the verbatim argument text as
	// a string, or cty.NilVal when the marker carried no parentheses.
	Args []cty.Value
}

// HandlerFunc computes the value to store for one attribute application.
// Returning cty.NilVal declines the write: the attribute table is left
// untouched and the application still succeeds.
type HandlerFunc func(ctx context.Context, call *Call) (cty.Value, error)

// Module is the interface that all compiled-in handler modules implement to
// be registered.
type Module interface {
	Register(r *Registry)
}

// RegisterHandler registers a Go handler function under a manifest-visible
// name. Duplicate registration is a programmer error.
func (r *Registry) RegisterHandler(name string, fn HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	slog.Debug("Registering attribute handler.", "name", name)
	r.handlers[name] = fn
}

// Handler looks up a registered Go handler by its manifest-visible name.
func (r *Registry) Handler(name string) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[name]
	return fn, ok
}
