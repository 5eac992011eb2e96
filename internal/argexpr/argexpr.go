// Package argexpr evaluates the argument text of a marker into an ordered
// sequence of values.
//
// The text is treated as a comma-separated list of HCL expressions: it is
// wrapped in a tuple constructor and parsed with hclsyntax, so
// `1, 2, 3`, `"hello"`, `{a = 1}, [true, false]` all produce the expected
// cty values. No variables or functions are in scope; argument text is
// literal by construction.
package argexpr

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Evaluate interprets argText as a list-producing expression and returns the
// resulting values in order. A nil or blank argText yields an empty slice.
// The returned error is the underlying HCL diagnostic set.
func Evaluate(argText *string) ([]cty.Value, error) {
	if argText == nil || strings.TrimSpace(*argText) == "" {
		return nil, nil
	}

	src := "[" + *argText + "]"
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<marker-args>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	args := make([]cty.Value, 0, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		args = append(args, elem)
	}
	return args, nil
}
