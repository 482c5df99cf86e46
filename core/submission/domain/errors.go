package domain

import "errors"

var (
	ErrInvalidData        = errors.New("invalid data provided for submission operations")
	ErrUnhandled          = errors.New("unexpected error")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// ValidationError carries the user facing message of the first rule a
// request broke. It matches ErrInvalidData under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
