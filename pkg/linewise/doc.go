// Package linewise contains the core types for equipping a consumer with
// file- and string-backed line-reading entry points that all dispatch to a
// single named handler.
//
// Highlights:
// - Config/CallOptions: composition-time settings and the per-call override
// - Handlers: a consumer's named handler set, resolved once at build time
// - Stream: a decoded, line-oriented, sequential read handle
// - NewStream: applies a PerlIO-style binmode layer stack (raw, utf8, crlf,
//   encoding(NAME)) on top of any byte source
// - ErrInvalidArgument/ErrNotFound/ErrIO: the failure taxonomy shared by all
//   entry points
//
// The entry-point factories themselves live in package readers; package
// fluent adds a chainable wrapper over them.
package linewise
