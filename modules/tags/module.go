// Package tags provides the Tags attribute handler: a MULTI attribute that
// accumulates every applied argument into one ordered list.
package tags

import (
	"context"

	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnApplyTags is the handler for the 'Tags' attribute. Each application
// appends its arguments to the value stored so far; application order is
// preserved.
func OnApplyTags(ctx context.Context, call *registry.Call) (cty.Value, error) {
	var elems []cty.Value
	if call.Current != cty.NilVal {
		it := call.Current.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			elems = append(elems, elem)
		}
	}
	elems = append(elems, call.Args...)

	if len(elems) == 0 {
		return cty.EmptyTupleVal, nil
	}
	return cty.TupleVal(elems), nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnApplyTags", OnApplyTags)
}
