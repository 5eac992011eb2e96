// Package registry provides the central "glue" for the attribute system.
//
// The Registry holds two mappings. The first stores compiled Go handler
// functions under the string identifiers used in manifests (e.g.
// "OnApplyTitle"), populated at startup by the registered modules. The
// second holds declared attributes: for each defining module, the attribute
// name, its parsed flag Spec, and the handler bound to it.
//
// Declarations are validated against a fixed flag vocabulary at declaration
// time, so a handler with a bad flag list is rejected before any function
// can be annotated with it.
package registry
