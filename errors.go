package glfx

import "errors"

// Package errors. Compile, link, and allocation failures are distinct so
// callers can tell malformed shader source apart from GPU exhaustion; both
// leave the filter Uninitialized and must abort setup of the filter chain
// rather than render with a half-initialized shader.
var (
	// ErrCompile is returned when a shader stage fails to compile.
	// The wrapped error text carries the driver's diagnostic log.
	ErrCompile = errors.New("glfx: shader compilation failed")

	// ErrLink is returned when linking the vertex and fragment stages fails.
	// The wrapped error text carries the driver's diagnostic log.
	ErrLink = errors.New("glfx: program link failed")

	// ErrResource is returned when a GPU object cannot be allocated.
	// Fatal for the filter instance being initialized.
	ErrResource = errors.New("glfx: GPU resource allocation failed")
)
