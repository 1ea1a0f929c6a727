package fluent

import (
	"github.com/ib-77/linewise/pkg/linewise"
	"github.com/ib-77/linewise/pkg/linewise/readers"
)

// Builder accumulates composition-time configuration for one consumer's
// handler set. Value receivers keep every step side-effect free.
type Builder[R any] struct {
	cfg      linewise.Config
	handlers linewise.Handlers[R]
}

func For[R any](h linewise.Handlers[R]) Builder[R] {
	return Builder[R]{handlers: h}
}

// Method selects the handler the entry points dispatch to.
func (b Builder[R]) Method(name string) Builder[R] {
	b.cfg.Method = name
	return b
}

// Binmode sets the decoding mode applied to the byte source.
func (b Builder[R]) Binmode(mode string) Builder[R] {
	b.cfg.Binmode = mode
	return b
}

// Config returns the configuration the entry points will be built with,
// defaults applied.
func (b Builder[R]) Config() linewise.Config {
	return b.cfg.WithDefaults()
}

func (b Builder[R]) FileReader() (readers.FileReader[R], error) {
	return readers.File(b.cfg, b.handlers)
}

func (b Builder[R]) StringReader() (readers.StringReader[R], error) {
	return readers.String(b.cfg, b.handlers)
}
