package linewise

import "context"

// Handler is a consumer's line-processing routine. It receives the decoded
// stream positioned at the start and the caller's pass-through arguments,
// and owns the stream for the duration of the call.
type Handler[R any] func(ctx context.Context, s *Stream, args ...any) (R, error)

// Handlers is a consumer's named handler set. An entry point built with
// Config.Method "m" dispatches to h["m"]; the lookup happens once at build
// time, never per call.
type Handlers[R any] map[string]Handler[R]
