package linewise

import "strings"

const (
	// DefaultMethod is the handler name used when Config.Method is empty.
	DefaultMethod = "read_handle"
	// DefaultBinmode is the decoding mode used when Config.Binmode is empty.
	DefaultBinmode = "encoding(UTF-8)"
)

// Config is the composition-time configuration of an entry point. It is
// resolved once when the entry point is built and never mutated afterwards.
type Config struct {
	// Method names the consumer handler the entry point dispatches to.
	Method string
	// Binmode is the decoding mode applied to the byte source, in the layer
	// grammar accepted by NewStream.
	Binmode string
}

// WithDefaults returns a copy of c with empty fields replaced by the package
// defaults and Binmode normalized.
func (c Config) WithDefaults() Config {
	if c.Method == "" {
		c.Method = DefaultMethod
	}
	if c.Binmode == "" {
		c.Binmode = DefaultBinmode
	}
	c.Binmode = NormalizeBinmode(c.Binmode)
	return c
}

// CallOptions overrides parts of a Config for a single file-reader call.
// It never leaks back into the Config the entry point was built from.
type CallOptions struct {
	// Binmode, when non-empty, replaces the configured decoding mode for
	// this call only.
	Binmode string
}

// NormalizeBinmode strips one leading colon, so ":raw" and "raw" name the
// same mode.
func NormalizeBinmode(mode string) string {
	return strings.TrimPrefix(mode, ":")
}
