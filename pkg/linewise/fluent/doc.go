// Package fluent provides a minimal chainable builder over the readers
// factories for callers that prefer composing entry points step by step.
//
// It keeps the API surface very small:
// - For: start a builder from a consumer's handler set
// - Method/Binmode: set composition-time configuration
// - FileReader/StringReader: produce the entry points
//
// Fluent is pure sugar: the produced callables are exactly those of package
// readers.
package fluent
