// Package tally provides the Number attribute handler: it sums all of its
// numeric arguments into a single stored value.
package tally

import (
	"context"
	"fmt"

	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnApplyTally is the handler for the 'Number' attribute. All arguments must
// be numbers; their sum is stored.
func OnApplyTally(ctx context.Context, call *registry.Call) (cty.Value, error) {
	total := cty.Zero
	for i, arg := range call.Args {
		if arg.Type() != cty.Number {
			return cty.NilVal, fmt.Errorf("Number argument %d is %s, want number", i+1, arg.Type().FriendlyName())
		}
		total = total.Add(arg)
	}
	return total, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnApplyTally", OnApplyTally)
}
