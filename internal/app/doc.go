// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: it loads definition files, registers the compiled-in
// handler modules, declares attributes from manifests, applies markers to
// function definitions, and renders the resulting attribute tables.
package app
