package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/funcattr/internal/funcref"
	"github.com/vk/funcattr/internal/registry"
	"github.com/vk/funcattr/internal/store"
	"github.com/vk/funcattr/modules/banner"
	"github.com/vk/funcattr/modules/tags"
	"github.com/vk/funcattr/modules/tally"
	"github.com/vk/funcattr/modules/title"
	"github.com/zclconf/go-cty/cty"
)

// newEnv builds a registry with the compiled-in handlers declared under the
// "main" module, plus a fresh store over it.
func newEnv(t *testing.T) (*registry.Registry, *store.Store) {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Declare("main", "Title", []string{"CODE"}, title.OnApplyTitle))
	require.NoError(t, r.Declare("main", "Number", []string{"CODE"}, tally.OnApplyTally))
	require.NoError(t, r.Declare("main", "Tags", []string{"CODE", "MULTI"}, tags.OnApplyTags))
	require.NoError(t, r.Declare("main", "Banner", []string{"CODE", "RAWDATA", "NAME"}, banner.OnApplyBanner))
	return r, store.New(r)
}

func strPtr(s string) *string { return &s }

func TestQuery_NoAttributes(t *testing.T) {
	t.Parallel()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "bare")

	all := s.GetAll(ref)
	require.NotNil(t, all)
	require.Empty(t, all)

	_, ok := s.Get(ref, "Title")
	require.False(t, ok, "absence is reported via the bool, not an error")
}

func TestGetAll_ReturnsDetachedCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "greet")

	handled, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"hello"`))
	require.True(t, handled)
	require.NoError(t, err)

	all := s.GetAll(ref)
	all["Title"] = cty.StringVal("tampered")
	all["Injected"] = cty.True

	got, ok := s.Get(ref, "Title")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("hello"), got)
	_, ok = s.Get(ref, "Injected")
	require.False(t, ok)
}

func TestApply_UnhandledMarker(t *testing.T) {
	t.Parallel()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "greet")

	handled, err := s.Apply(context.Background(), "main", ref, "NoSuchAttr", nil)
	require.NoError(t, err, "an undeclared attribute is not a failure")
	require.False(t, handled)
	require.Empty(t, s.GetAll(ref))
}

func TestApply_DuplicateNonMulti(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "greet")

	handled, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"first"`))
	require.True(t, handled)
	require.NoError(t, err)

	_, err = s.Apply(ctx, "main", ref, "Title", strPtr(`"second"`))
	var dupErr *store.DuplicateAttributeError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, "Title", dupErr.Attribute)
	require.Equal(t, "greet", dupErr.Function)

	got, ok := s.Get(ref, "Title")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("first"), got, "the first value must be retained")
}

func TestApply_MultiMergeOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "greet")

	for _, arg := range []string{`"X"`, `"Y"`} {
		handled, err := s.Apply(ctx, "main", ref, "Tags", strPtr(arg))
		require.True(t, handled)
		require.NoError(t, err)
	}

	got, ok := s.Get(ref, "Tags")
	require.True(t, ok)
	want := cty.TupleVal([]cty.Value{cty.StringVal("X"), cty.StringVal("Y")})
	require.True(t, want.RawEquals(got), "stored %s, want %s", got.GoString(), want.GoString())
}

func TestApply_RawDataAbsentVersusEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var received []cty.Value
	r := registry.New()
	require.NoError(t, r.Declare("main", "Probe", []string{"CODE", "RAWDATA"},
		func(ctx context.Context, call *registry.Call) (cty.Value, error) {
			received = append(received, call.Args...)
			return cty.True, nil
		}))
	s := store.New(r)

	refA := s.RegisterFunction("main", "a")
	handled, err := s.Apply(ctx, "main", refA, "Probe", nil)
	require.True(t, handled)
	require.NoError(t, err)

	refB := s.RegisterFunction("main", "b")
	handled, err = s.Apply(ctx, "main", refB, "Probe", strPtr(""))
	require.True(t, handled)
	require.NoError(t, err)

	require.Len(t, received, 2)
	require.Equal(t, cty.NilVal, received[0], "no parentheses must arrive as the absence sentinel")
	require.Equal(t, cty.StringVal(""), received[1], "empty parentheses must arrive as an empty string")
}

func TestApply_RawDataSkipsExpressionEvaluation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "greet")

	// This text would be an evaluation error for a non-raw attribute.
	handled, err := s.Apply(ctx, "main", ref, "Banner", strPtr("not ( valid hcl"))
	require.True(t, handled)
	require.NoError(t, err)

	got, ok := s.Get(ref, "Banner")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("greet: not ( valid hcl"), got)
}

func TestApply_NameInjection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)

	named := s.RegisterFunction("main", "greet")
	handled, err := s.Apply(ctx, "main", named, "Banner", nil)
	require.True(t, handled)
	require.NoError(t, err)
	got, ok := s.Get(named, "Banner")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("greet"), got)

	anon := s.RegisterAnonymous("main")
	handled, err = s.Apply(ctx, "main", anon, "Banner", nil)
	require.True(t, handled)
	require.NoError(t, err)
	got, ok = s.Get(anon, "Banner")
	require.True(t, ok)
	require.Equal(t, cty.StringVal(funcref.AnonymousName), got,
		"anonymous functions report the fixed placeholder name")
}

func TestApply_SentinelReturnSkipsWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := registry.New()
	require.NoError(t, r.Declare("main", "SideEffect", []string{"CODE", "MULTI"},
		func(ctx context.Context, call *registry.Call) (cty.Value, error) {
			return cty.NilVal, nil
		}))
	s := store.New(r)
	ref := s.RegisterFunction("main", "quiet")

	handled, err := s.Apply(ctx, "main", ref, "SideEffect", nil)
	require.True(t, handled)
	require.NoError(t, err, "declining to store a value is a success")
	require.Empty(t, s.GetAll(ref))
}

func TestApply_StoredNullIsNotTheSentinel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := registry.New()
	require.NoError(t, r.Declare("main", "Nullable", []string{"CODE"},
		func(ctx context.Context, call *registry.Call) (cty.Value, error) {
			return cty.NullVal(cty.String), nil
		}))
	s := store.New(r)
	ref := s.RegisterFunction("main", "f")

	handled, err := s.Apply(ctx, "main", ref, "Nullable", nil)
	require.True(t, handled)
	require.NoError(t, err)

	got, ok := s.Get(ref, "Nullable")
	require.True(t, ok, "a typed null is a legitimate stored value, distinct from the sentinel")
	require.True(t, got.IsNull())
}

func TestApply_HandlerErrorPropagatesVerbatim(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("handler exploded")
	r := registry.New()
	require.NoError(t, r.Declare("main", "Boom", []string{"CODE"},
		func(ctx context.Context, call *registry.Call) (cty.Value, error) {
			return cty.NilVal, boom
		}))
	s := store.New(r)
	ref := s.RegisterFunction("main", "f")

	handled, err := s.Apply(ctx, "main", ref, "Boom", nil)
	require.True(t, handled)
	require.Same(t, boom, err, "handler failures must not be wrapped")
	require.Empty(t, s.GetAll(ref), "no partial mutation may be visible after a failed application")
}

func TestApply_ArgumentParseError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "f")

	_, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"unclosed`))
	var parseErr *store.ArgumentParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "Title", parseErr.Attribute)
	require.NotNil(t, errors.Unwrap(parseErr))
	require.Empty(t, s.GetAll(ref))
}

func TestApply_EarlierApplicationsSurviveALaterFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)
	ref := s.RegisterFunction("main", "f")

	handled, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"kept"`))
	require.True(t, handled)
	require.NoError(t, err)

	_, err = s.Apply(ctx, "main", ref, "Number", strPtr("1 +"))
	require.Error(t, err)

	got, ok := s.Get(ref, "Title")
	require.True(t, ok, "a failing application must not roll back earlier successes")
	require.Equal(t, cty.StringVal("kept"), got)
}

func TestEndToEnd_TitleAndNumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)

	ref := s.RegisterFunction("main", "greet")
	handled, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"hello"`))
	require.True(t, handled)
	require.NoError(t, err)
	got, ok := s.Get(ref, "Title")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("hello"), got)

	sum := s.RegisterFunction("main", "sum")
	handled, err = s.Apply(ctx, "main", sum, "Number", strPtr("1, 2, 3, 4, 5"))
	require.True(t, handled)
	require.NoError(t, err)
	got, ok = s.Get(sum, "Number")
	require.True(t, ok)
	require.True(t, cty.NumberIntVal(15).RawEquals(got), "stored %s", got.GoString())
}

func TestLookup_ByName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)

	ref := s.RegisterFunction("main", "greet")
	_, err := s.Apply(ctx, "main", ref, "Title", strPtr(`"hello"`))
	require.NoError(t, err)

	got, ok, err := s.GetByName("main", "greet", "Title")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, cty.StringVal("hello"), got)

	all, err := s.GetAllByName("main", "greet")
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = s.Lookup("main", "vanished")
	var unknownErr *store.UnknownFunctionError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "vanished", unknownErr.Function)

	_, _, err = s.GetByName("main", "vanished", "Title")
	require.ErrorAs(t, err, &unknownErr)
	_, err = s.GetAllByName("other", "greet")
	require.ErrorAs(t, err, &unknownErr, "scopes are per module")
}

func TestRegisterFunction_RebindsScope(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, s := newEnv(t)

	first := s.RegisterFunction("main", "greet")
	_, err := s.Apply(ctx, "main", first, "Title", strPtr(`"old"`))
	require.NoError(t, err)

	second := s.RegisterFunction("main", "greet")
	require.NotEqual(t, first, second)

	resolved, err := s.Lookup("main", "greet")
	require.NoError(t, err)
	require.Equal(t, second, resolved, "the latest registration wins the name")

	// The first handle and its table stay valid.
	got, ok := s.Get(first, "Title")
	require.True(t, ok)
	require.Equal(t, cty.StringVal("old"), got)
}

func TestDeclaredName_IndependentOfHandleCopies(t *testing.T) {
	t.Parallel()
	_, s := newEnv(t)

	ref := s.RegisterFunction("main", "greet")
	alias := ref // copying the handle does not change the declared name
	require.Equal(t, "greet", s.DeclaredName(alias))

	anon := s.RegisterAnonymous("main")
	require.Equal(t, funcref.AnonymousName, s.DeclaredName(anon))
}
