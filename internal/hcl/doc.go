// Package hcl implements the config.Loader interface for HCL definition
// files. It discovers files, parses them with hclparse, decodes them via
// gohcl into the schema structs, and translates the result into the
// format-agnostic config model.
package hcl
