// Package banner provides the Banner attribute handler: a RAWDATA+NAME
// attribute that stores the annotated function's declared name together with
// the verbatim marker text.
package banner

import (
	"context"
	"fmt"

	"github.com/vk/funcattr/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnApplyBanner is the handler for the 'Banner' attribute. The single raw
// argument is the marker's verbatim parenthesized text; a marker with no
// parentheses arrives as the absence sentinel and stores the bare name.
func OnApplyBanner(ctx context.Context, call *registry.Call) (cty.Value, error) {
	if len(call.Args) != 1 {
		return cty.NilVal, fmt.Errorf("Banner expects the raw argument slot, got %d arguments", len(call.Args))
	}
	raw := call.Args[0]
	if raw == cty.NilVal {
		return cty.StringVal(call.Name), nil
	}
	return cty.StringVal(call.Name + ": " + raw.AsString()), nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnApplyBanner", OnApplyBanner)
}
