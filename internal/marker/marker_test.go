package marker_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/funcattr/internal/marker"
)

func TestParse_Success(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		wantName string
		wantArgs *string
	}{
		{
			name:     "bare marker has no argument blob",
			input:    "Title",
			wantName: "Title",
			wantArgs: nil,
		},
		{
			name:     "empty parentheses yield an empty blob, not absence",
			input:    "Title()",
			wantName: "Title",
			wantArgs: strPtr(""),
		},
		{
			name:     "quoted argument text",
			input:    `Title("hello")`,
			wantName: "Title",
			wantArgs: strPtr(`"hello"`),
		},
		{
			name:     "multiple arguments",
			input:    "Number(1, 2, 3, 4, 5)",
			wantName: "Number",
			wantArgs: strPtr("1, 2, 3, 4, 5"),
		},
		{
			name:     "parens inside string literals are not delimiters",
			input:    `Banner("a (nested) paren")`,
			wantName: "Banner",
			wantArgs: strPtr(`"a (nested) paren"`),
		},
		{
			name:     "nested parentheses in argument text",
			input:    "Tags(upper(lower))",
			wantName: "Tags",
			wantArgs: strPtr("upper(lower)"),
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  Title  ",
			wantName: "Title",
			wantArgs: nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := marker.Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.wantName, m.Name)
			if tc.wantArgs == nil {
				require.False(t, m.HasArgs())
				require.Nil(t, m.ArgText)
			} else {
				require.True(t, m.HasArgs())
				require.Equal(t, *tc.wantArgs, *m.ArgText)
			}
		})
	}
}

func TestParse_Failure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "unterminated argument list", input: "Title(\"hello\""},
		{name: "unbalanced closing paren", input: "Title(a))("},
		{name: "name starting with a digit", input: "1Title(x)"},
		{name: "name with punctuation", input: "Ti-tle"},
		{name: "bare parens without a name", input: "(x)"},
		{name: "unterminated string literal", input: `Title("oops)`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := marker.Parse(tc.input)
			require.Error(t, err)
		})
	}
}

func strPtr(s string) *string { return &s }
