// Package testutil provides shared helpers for integration tests: it
// materializes inline HCL definitions into a temp directory and runs a full
// App over them with captured output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/funcattr/internal/app"
	"github.com/vk/funcattr/internal/hcl"
	"github.com/vk/funcattr/internal/report"
)

// HarnessResult captures everything an integration test may want to assert on.
type HarnessResult struct {
	Output string
	RunErr error
	App    *app.App
}

// WriteFiles materializes the given relative-path -> contents map under a
// fresh temp dir and returns its root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, contents := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}
	return root
}

// RunApp builds an App over the given inline HCL files and runs it. The
// default configuration renders text output with error-level text logs so
// the captured output is dominated by the report; mutate can override any
// field before the app is constructed.
func RunApp(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{
		GridPath:  root,
		Output:    report.FormatText,
		LogFormat: "text",
		LogLevel:  "error",
	})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	var buf bytes.Buffer
	a := app.NewApp(&buf, cfg, hcl.NewLoader())
	runErr := a.Run(context.Background())

	return &HarnessResult{Output: buf.String(), RunErr: runErr, App: a}
}
