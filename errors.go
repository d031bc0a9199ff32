package savekit

import (
	"errors"
	"fmt"
)

// Detection errors. These are diagnostic only: the detection entry points
// fold every failure into a KindNone result and never surface an error to
// the caller.
var (
	ErrTooSmall     = errors.New("input below minimum detectable size")
	ErrTooBig       = errors.New("input above maximum detectable size")
	ErrUnrecognized = errors.New("no recognizer matched")
)

// DetectionError records a failure along with the operation and file path
// that caused it. Used for boundary logging at the path entry point.
type DetectionError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *DetectionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *DetectionError) Unwrap() error {
	return e.Err
}

// IsTooSmall reports whether an error indicates an undersized input
func IsTooSmall(err error) bool {
	return errors.Is(err, ErrTooSmall)
}

// IsTooBig reports whether an error indicates an oversized input
func IsTooBig(err error) bool {
	return errors.Is(err, ErrTooBig)
}

// IsUnrecognized reports whether an error indicates that no recognizer
// matched the input
func IsUnrecognized(err error) bool {
	return errors.Is(err, ErrUnrecognized)
}
