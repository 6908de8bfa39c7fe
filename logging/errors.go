package logging

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrNilLogger is returned when a composite is constructed from a nil
	// member list or a list containing a nil logger.
	ErrNilLogger = errors.New("nil logger")

	// ErrWriteFailed is returned when a logger cannot write its message.
	ErrWriteFailed = errors.New("log write failed")
)

// WriteError indicates a failed write to a logger destination.
// Provides the destination and the underlying cause.
type WriteError struct {
	Dest  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("log write failed: %s: %v", e.Dest, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, logging.ErrWriteFailed)
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}
