// Package logging provides the structured logger used across egg-symmetry.
//
// Components accept the small Logger interface rather than a concrete logging
// library. The command-line entry point wires a zerolog-backed adapter that
// writes human-readable output to stderr; library callers and tests can pass
// NoopLogger to silence everything.
//
// stdout is never written by this package. It carries command results and the
// MCP protocol stream.
package logging
