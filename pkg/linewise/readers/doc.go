// Package readers builds the two entry points a consumer exposes for getting
// line-oriented input: one over a named file, one over an in-memory string.
//
// Common usage:
// - File: build a FileReader that validates and opens a path, decodes it
//   under the configured binmode (overridable per call), and dispatches
// - String: build a StringReader that wraps an in-memory string the same way
//
// Both builders resolve the configured handler name against the consumer's
// handler set once, at build time; the produced callables hold no state
// between calls and never intercept handler-side failures.
package readers
