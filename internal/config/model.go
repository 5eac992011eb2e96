package config

// DefaultModule is the module handle assumed when a definition does not name
// one explicitly.
const DefaultModule = "main"

// Model is the unified, format-agnostic representation of the entire
// application configuration: every declared attribute and every annotated
// function definition, in source order.
type Model struct {
	Attributes []*AttributeDefinition
	Functions  []*FunctionDefinition
}

// AttributeDefinition is the format-agnostic representation of an
// `attribute` manifest block: a declared attribute and the name of the Go
// handler bound to it.
type AttributeDefinition struct {
	Module      string
	Name        string
	Description string
	Flags       []string
	Handler     string
}

// FunctionDefinition is the format-agnostic representation of a `function`
// block: a named function definition and the markers attached to it, in
// declaration order.
type FunctionDefinition struct {
	Module  string
	Name    string
	Markers []string
}
