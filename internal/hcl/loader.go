package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/funcattr/internal/config"
	"github.com/vk/funcattr/internal/ctxlog"
	"github.com/vk/funcattr/internal/fsutil"
	"github.com/vk/funcattr/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under the given paths, in sorted file order,
// and translates the decoded blocks into the unified config model. Block
// order within a file is preserved.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("cannot read definitions path %q: %w", path, err)
		}

		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk definitions path %q: %w", path, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl files found in path", "path", path)
			continue
		}

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse %s: %w", filePath, diags)
			}

			var file schema.File
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode %s: %w", filePath, diags)
			}

			translateFile(model, &file)
			logger.Debug("Loaded definitions from HCL file.", "file", filePath,
				"attributes", len(file.Attributes), "functions", len(file.Functions))
		}
	}

	logger.Debug("Configuration model assembled.",
		"attribute_definitions", len(model.Attributes),
		"function_definitions", len(model.Functions))
	return model, nil
}

// translateFile appends a decoded file's blocks to the model, filling in the
// default module handle where none was given.
func translateFile(model *config.Model, file *schema.File) {
	for _, attr := range file.Attributes {
		module := attr.Module
		if module == "" {
			module = config.DefaultModule
		}
		model.Attributes = append(model.Attributes, &config.AttributeDefinition{
			Module:      module,
			Name:        attr.Name,
			Description: attr.Description,
			Flags:       attr.Flags,
			Handler:     attr.Handler,
		})
	}
	for _, fn := range file.Functions {
		module := fn.Module
		if module == "" {
			module = config.DefaultModule
		}
		model.Functions = append(model.Functions, &config.FunctionDefinition{
			Module:  module,
			Name:    fn.Name,
			Markers: fn.Attrs,
		})
	}
}
