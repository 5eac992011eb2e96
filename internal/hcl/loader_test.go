package hcl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/funcattr/internal/config"
	"github.com/vk/funcattr/internal/hcl"
	"github.com/vk/funcattr/internal/testutil"
)

func TestLoad_TranslatesBlocks(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"modules/manifest.hcl": `
			attribute "Title" {
				description = "Stores a display title."
				flags       = ["CODE"]
				handler     = "OnApplyTitle"
			}

			attribute "Tags" {
				module  = "meta"
				flags   = ["CODE", "MULTI"]
				handler = "OnApplyTags"
			}
		`,
		"main.hcl": `
			function "greet" {
				attrs = ["Title(\"hello\")"]
			}

			function "lookup" {
				module = "meta"
				attrs  = ["Tags(\"a\")", "Tags(\"b\")"]
			}
		`,
	})

	model, err := hcl.NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, model.Attributes, 2)
	title := model.Attributes[0]
	require.Equal(t, config.DefaultModule, title.Module, "module defaults to main")
	require.Equal(t, "Title", title.Name)
	require.Equal(t, "Stores a display title.", title.Description)
	require.Equal(t, []string{"CODE"}, title.Flags)
	require.Equal(t, "OnApplyTitle", title.Handler)

	tags := model.Attributes[1]
	require.Equal(t, "meta", tags.Module)
	require.Equal(t, []string{"CODE", "MULTI"}, tags.Flags)

	require.Len(t, model.Functions, 2)
	require.Equal(t, "greet", model.Functions[0].Name)
	require.Equal(t, config.DefaultModule, model.Functions[0].Module)
	require.Equal(t, []string{`Title("hello")`}, model.Functions[0].Markers)
	require.Equal(t, "meta", model.Functions[1].Module)
	require.Len(t, model.Functions[1].Markers, 2)
}

func TestLoad_FileOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"b.hcl": `function "second" {}`,
		"a.hcl": `function "first" {}`,
	})

	model, err := hcl.NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, model.Functions, 2)
	require.Equal(t, "first", model.Functions[0].Name)
	require.Equal(t, "second", model.Functions[1].Name)
}

func TestLoad_Failure(t *testing.T) {
	t.Parallel()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := hcl.NewLoader().Load(context.Background(), "/nonexistent/definitely/missing")
		require.Error(t, err)
	})

	t.Run("invalid hcl", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{
			"broken.hcl": `function "oops" {`,
		})
		_, err := hcl.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("manifest missing required field", func(t *testing.T) {
		t.Parallel()
		root := testutil.WriteFiles(t, map[string]string{
			"manifest.hcl": `
				attribute "Title" {
					flags = ["CODE"]
				}
			`,
		})
		_, err := hcl.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to decode")
	})
}
