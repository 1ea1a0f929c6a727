package linewise

import "io"

// LineSource is the sequential line capability a handler consumes.
type LineSource interface {
	// ReadLine returns the next line with its terminator preserved, or
	// io.EOF when the source is exhausted.
	ReadLine() (string, error)
}

// LineCloser is a LineSource backed by a releasable resource.
type LineCloser interface {
	LineSource
	io.Closer
}
