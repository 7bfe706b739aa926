// Package apperr defines the error kinds shared by every feature.
//
// Feature packages declare their own sentinel errors with New so that callers can
// match either the specific error (errors.Is(err, usecase.ErrStockNotFound)) or its
// kind (errors.Is(err, apperr.ErrNotFound)).
package apperr

import "errors"

var (
	// ErrNotFound indicates that a referenced entity or composite key is absent.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation.
	ErrConflict = errors.New("already exists")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("invalid input")
)

// Error is an error message tagged with one of the kinds above.
type Error struct {
	kind error
	msg  string
}

// New returns an error with the given message that unwraps to kind.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Error returns the message.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the kind.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind reports which of ErrNotFound, ErrConflict, ErrValidation err belongs to.
// It returns nil for errors outside the taxonomy.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrValidation} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Validation returns a validation error with the given message.
func Validation(msg string) error {
	return New(ErrValidation, msg)
}
