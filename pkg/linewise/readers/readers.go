package readers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ib-77/linewise/pkg/linewise"
)

// FileReader reads the named file and dispatches its decoded lines to the
// consumer's handler. opts may be nil; trailing args are forwarded to the
// handler verbatim.
type FileReader[R any] func(ctx context.Context, opts *linewise.CallOptions, path string, args ...any) (R, error)

// StringReader treats content as a virtual file and dispatches it the same
// way. A nil content is rejected; an empty string is a valid, zero-line
// source. There is deliberately no per-call options slot on this variant.
type StringReader[R any] func(ctx context.Context, content *string, args ...any) (R, error)

// File builds the file-backed entry point for cfg over the consumer's
// handler set.
func File[R any](cfg linewise.Config, h linewise.Handlers[R]) (FileReader[R], error) {
	cfg = cfg.WithDefaults()
	handler, err := resolve(cfg, h)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, opts *linewise.CallOptions, path string, args ...any) (R, error) {
		var zero R

		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if path == "" {
			return zero, fmt.Errorf("no filename specified: %w", linewise.ErrInvalidArgument)
		}

		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return zero, fmt.Errorf("file '%s' does not exist: %w", path, linewise.ErrNotFound)
		case err != nil:
			return zero, fmt.Errorf("couldn't read file '%s': %v: %w", path, err, linewise.ErrIO)
		case !info.Mode().IsRegular():
			return zero, fmt.Errorf("'%s' is not a plain file: %w", path, linewise.ErrInvalidArgument)
		}

		binmode := cfg.Binmode
		if opts != nil && opts.Binmode != "" {
			binmode = linewise.NormalizeBinmode(opts.Binmode)
		}

		f, err := os.Open(path)
		if err != nil {
			return zero, fmt.Errorf("couldn't read file '%s': %v: %w", path, err, linewise.ErrIO)
		}

		s, err := linewise.NewStream(f, binmode)
		if err != nil {
			_ = f.Close()
			return zero, fmt.Errorf("couldn't read file '%s': %v: %w", path, err, linewise.ErrIO)
		}
		defer s.Close()

		return handler(ctx, s, args...)
	}, nil
}

// String builds the string-backed entry point for cfg over the consumer's
// handler set.
func String[R any](cfg linewise.Config, h linewise.Handlers[R]) (StringReader[R], error) {
	cfg = cfg.WithDefaults()
	handler, err := resolve(cfg, h)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, content *string, args ...any) (R, error) {
		var zero R

		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if content == nil {
			return zero, fmt.Errorf("no string provided: %w", linewise.ErrInvalidArgument)
		}

		s, err := linewise.NewStream(strings.NewReader(*content), cfg.Binmode)
		if err != nil {
			return zero, fmt.Errorf("error opening string for reading: %v: %w", err, linewise.ErrIO)
		}
		defer s.Close()

		return handler(ctx, s, args...)
	}, nil
}

func resolve[R any](cfg linewise.Config, h linewise.Handlers[R]) (linewise.Handler[R], error) {
	handler, ok := h[cfg.Method]
	if !ok || handler == nil {
		return nil, fmt.Errorf("no handler named '%s': %w", cfg.Method, linewise.ErrInvalidArgument)
	}
	return handler, nil
}
