// Package schema holds the HCL decoding structs for definition files.
package schema

// Attribute represents an `attribute` block: the manifest declaring an
// attribute's flags and the Go handler it is bound to.
type Attribute struct {
	Name        string   `hcl:"name,label"`
	Module      string   `hcl:"module,optional"`
	Description string   `hcl:"description,optional"`
	Flags       []string `hcl:"flags"`
	Handler     string   `hcl:"handler"`
}

// Function represents a `function` block: a named function definition with
// its attached markers, in declaration order.
type Function struct {
	Name   string   `hcl:"name,label"`
	Module string   `hcl:"module,optional"`
	Attrs  []string `hcl:"attrs,optional"`
}

// File represents the top-level structure of a definition file. Attribute
// manifests and function definitions may live in the same file or be split
// across a modules path and a grid path; the loader treats them uniformly.
type File struct {
	Attributes []*Attribute `hcl:"attribute,block"`
	Functions  []*Function  `hcl:"function,block"`
}
