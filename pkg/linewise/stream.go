package linewise

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Stream is a decoded, line-oriented, sequential read handle. It is created
// per call, positioned at the start, and owned exclusively by that call until
// it is handed to the handler. Every Stream is stamped with an identity and
// a creation time for diagnosability.
type Stream struct {
	id        uuid.UUID
	createdAt time.Time
	src       io.Reader
	br        *bufio.Reader
	closed    bool
}

// NewStream builds a Stream over r, decoding it under the given binmode
// (leading colon optional, empty means DefaultBinmode). If r implements
// io.Closer, Close releases it.
func NewStream(r io.Reader, binmode string) (*Stream, error) {
	decoded, err := decodeChain(r, binmode)
	if err != nil {
		return nil, err
	}
	return &Stream{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		src:       r,
		br:        bufio.NewReader(decoded),
	}, nil
}

func (s *Stream) ID() uuid.UUID {
	return s.id
}

// CreatedAt time of creation (UTC)
func (s *Stream) CreatedAt() time.Time {
	return s.createdAt
}

// Read exposes the decoded byte stream for handlers that do not want
// line-at-a-time access.
func (s *Stream) Read(p []byte) (int, error) {
	return s.br.Read(p)
}

// ReadLine returns the next line with its terminator preserved. A final line
// without a terminator is returned as-is; the call after the last line
// returns io.EOF.
func (s *Stream) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// Lines iterates the remaining lines in order, terminators preserved. A read
// failure is yielded once as a non-nil error and ends the sequence; plain
// exhaustion ends it silently.
func (s *Stream) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := s.ReadLine()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// Close releases the underlying resource, if it is releasable. Closing an
// already closed Stream is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
