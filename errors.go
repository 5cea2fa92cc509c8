package gdal

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding is matched by errors returned when an argument string
	// cannot be represented as a native NUL-terminated string.
	ErrEncoding = errors.New("string contains an embedded NUL byte")

	// ErrEngine is matched by errors returned when the native engine
	// signals failure.
	ErrEngine = errors.New("engine call failed")
)

// EncodingError indicates an argument string that cannot cross the native
// boundary because it contains an embedded NUL byte. The string is never
// silently truncated.
//
// Satisfies errors.Is(err, ErrEncoding).
type EncodingError struct {
	Arg string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid argument %q: embedded NUL byte", e.Arg)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// EngineError indicates that a native engine call failed. Message is the
// text most recently recorded on the engine's diagnostic channel, verbatim,
// queried immediately after the failing call.
//
// Satisfies errors.Is(err, ErrEngine).
type EngineError struct {
	Function string
	Message  string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Function, e.Message)
}

func (e *EngineError) Unwrap() error { return ErrEngine }
