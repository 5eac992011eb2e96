// Package marker parses definition-time annotation tokens of the form
// `Name` or `Name(argument text)`.
//
// The distinction between a marker with no parentheses and a marker with
// empty parentheses is significant and preserved: raw-mode handlers receive
// the absence sentinel for the former and an empty string for the latter.
package marker

import (
	"fmt"
	"strings"
	"unicode"
)

// Marker is a parsed annotation token.
type Marker struct {
	// Name is the attribute name the marker refers to.
	Name string

	// ArgText is the verbatim text between the outer parentheses, or nil
	// when the marker carried no parentheses at all.
	ArgText *string
}

// HasArgs reports whether the marker carried a parenthesized blob, even an
// empty one.
func (m Marker) HasArgs() bool {
	return m.ArgText != nil
}

// Parse splits a marker string into its name and optional argument text.
// The argument text is not interpreted here; balanced parentheses and both
// quote styles are honored so that the outer closing paren is found
// correctly (e.g. `Title("a (nested) paren")`).
func Parse(s string) (Marker, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Marker{}, fmt.Errorf("empty marker")
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if err := validateName(s); err != nil {
			return Marker{}, err
		}
		return Marker{Name: s}, nil
	}

	name := strings.TrimSpace(s[:open])
	if err := validateName(name); err != nil {
		return Marker{}, err
	}

	if s[len(s)-1] != ')' {
		return Marker{}, fmt.Errorf("marker %q: unterminated argument list", name)
	}

	body := s[open+1 : len(s)-1]
	if err := checkBalanced(body); err != nil {
		return Marker{}, fmt.Errorf("marker %q: %w", name, err)
	}

	return Marker{Name: name, ArgText: &body}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("marker has no name")
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("invalid marker name %q", name)
	}
	return nil
}

// checkBalanced verifies that every parenthesis inside the argument blob is
// matched, ignoring parens inside string literals.
func checkBalanced(body string) error {
	depth := 0
	var quote byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced parentheses in argument text")
			}
		}
	}
	if quote != 0 {
		return fmt.Errorf("unterminated string literal in argument text")
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced parentheses in argument text")
	}
	return nil
}
