package registry

import "fmt"

// Flag vocabulary accepted by Declare. CODE is the only supported entity
// kind; the other kind tokens exist in the marker grammar but are rejected.
const (
	FlagCode    = "CODE"
	FlagRawData = "RAWDATA"
	FlagMulti   = "MULTI"
	FlagName    = "NAME"
)

// rejectedKinds are recognized entity-kind tokens that this system does not
// support: attributes attach to function-like entities only.
var rejectedKinds = map[string]struct{}{
	"SCALAR": {},
	"HASH":   {},
	"ARRAY":  {},
}

// Spec holds the declared behavior flags of an attribute. It is immutable
// after declaration.
type Spec struct {
	// Raw passes the verbatim marker argument text to the handler instead
	// of evaluating it.
	Raw bool

	// Multi allows the attribute to be applied more than once to the same
	// function; the handler then receives the current stored value.
	Multi bool

	// WantsName passes the annotated function's declared name to the
	// handler.
	WantsName bool
}

// UnrecognizedFlagError reports a declaration flag outside the fixed
// vocabulary. It aborts the declaration.
type UnrecognizedFlagError struct {
	Attribute string
	Flag      string
}

func (e *UnrecognizedFlagError) Error() string {
	return fmt.Sprintf("attribute %q: unrecognized flag %q", e.Attribute, e.Flag)
}

// UnsupportedEntityKindError reports a declaration that asked for a non-CODE
// entity kind. It aborts the declaration.
type UnsupportedEntityKindError struct {
	Attribute string
	Kind      string
}

func (e *UnsupportedEntityKindError) Error() string {
	return fmt.Sprintf("attribute %q: unsupported entity kind %q (only CODE attributes are supported)", e.Attribute, e.Kind)
}

// ParseFlags validates a declaration's flag tokens and folds them into a
// Spec. The CODE token is mandatory.
func ParseFlags(attribute string, flags []string) (Spec, error) {
	var spec Spec
	sawCode := false

	for _, flag := range flags {
		switch flag {
		case FlagCode:
			sawCode = true
		case FlagRawData:
			spec.Raw = true
		case FlagMulti:
			spec.Multi = true
		case FlagName:
			spec.WantsName = true
		default:
			if _, rejected := rejectedKinds[flag]; rejected {
				return Spec{}, &UnsupportedEntityKindError{Attribute: attribute, Kind: flag}
			}
			return Spec{}, &UnrecognizedFlagError{Attribute: attribute, Flag: flag}
		}
	}

	if !sawCode {
		return Spec{}, fmt.Errorf("attribute %q: entity kind flag %s is required", attribute, FlagCode)
	}
	return spec, nil
}
