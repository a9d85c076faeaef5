package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidOperation indicates that an operation is not allowed in the current state of an aggregate.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrArgumentOutOfRange indicates an enum value outside of the known set.
var ErrArgumentOutOfRange = errors.New("argument out of range")

// DomainError carries the exact user facing message of a rule violation together
// with its kind (one of the sentinels above). errors.Is(err, ErrValidation) works on it.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewValidationError builds a DomainError of kind ErrValidation.
func NewValidationError(msg string) error {
	return &DomainError{Kind: ErrValidation, Message: msg}
}

// NewInvalidOperationError builds a DomainError of kind ErrInvalidOperation.
func NewInvalidOperationError(msg string) error {
	return &DomainError{Kind: ErrInvalidOperation, Message: msg}
}

// NewArgumentOutOfRangeError builds a DomainError of kind ErrArgumentOutOfRange.
func NewArgumentOutOfRangeError(msg string) error {
	return &DomainError{Kind: ErrArgumentOutOfRange, Message: msg}
}

// IsDomainError reports whether err is (or wraps) a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
