// Package title provides the Title attribute handler: a plain single-value
// attribute that stores its sole argument verbatim.
package title

import (
	"context"
	"fmt"

	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnApplyTitle is the handler for the 'Title' attribute. It stores the
// marker's single argument as-is.
func OnApplyTitle(ctx context.Context, call *registry.Call) (cty.Value, error) {
	if len(call.Args) != 1 {
		return cty.NilVal, fmt.Errorf("Title expects exactly one argument, got %d", len(call.Args))
	}
	return call.Args[0], nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnApplyTitle", OnApplyTitle)
}
