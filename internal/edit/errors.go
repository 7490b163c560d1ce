// errors.go defines the failure categories of the editing engine.
//
// Every error leaving Execute wraps exactly one of these sentinels so callers
// can classify with errors.Is. Detail goes into the wrapping message.

package edit

import "errors"

var (
	// ErrInvalid is returned for malformed requests. No I/O has happened.
	ErrInvalid = errors.New("invalid request")
	// ErrNotFound is returned when the target file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupported is returned when an edit asks for regex matching.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrIO is returned when reading or writing the file fails.
	ErrIO = errors.New("i/o error")
	// ErrInternal is returned for unexpected failures, such as a matcher
	// that cannot be built.
	ErrInternal = errors.New("internal error")
)
