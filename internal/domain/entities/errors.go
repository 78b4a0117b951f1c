package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTokenNotFound   = errors.New("response token not found")

	// Storage constraint errors
	ErrDuplicate        = errors.New("duplicate record")
	ErrMissingReference = errors.New("referenced record does not exist")
)

// ConstraintError carries the storage message of a violated constraint along
// with one of ErrDuplicate or ErrMissingReference.
type ConstraintError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
