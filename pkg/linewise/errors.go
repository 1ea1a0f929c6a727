package linewise

import "errors"

// Failure taxonomy shared by every entry point. Each validation or platform
// failure wraps exactly one of these sentinels; handler-side failures are
// never wrapped.
var (
	// ErrInvalidArgument marks a missing or empty required argument, or a
	// path that exists but is not a plain file.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a file path that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO marks a platform refusal to open or decode the source.
	ErrIO = errors.New("i/o error")
)

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}
