// Package config defines the unified, format-agnostic model of the
// application's definitions and the Loader interface that format-specific
// front ends (currently HCL) implement to produce it.
package config
