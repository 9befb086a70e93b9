// Package render turns sentence edit scripts into presentable output.
//
// Three renderers consume the same []sentdiff.Op: a console view with +/-
// markers and optional ANSI color, a standalone HTML report written under
// the configured report directory, and a JSON encoding for external
// tooling.
package render
