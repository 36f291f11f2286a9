package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidOperation indicates that a well-formed request would break a structural rule
// (ungrouping a group that still has children, toggling a child, and so on).
var ErrInvalidOperation = errors.New("invalid operation")

// ErrForbidden indicates that the user is not allowed to act on a workplace.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories use it to report storage failures without interpreting them.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// OperationError is returned when an operation is rejected by an invariant.
// ChildCount is set when the rejection is caused by live children, so callers
// can ask the user to confirm and retry with force.
type OperationError struct {
	Reason     string
	ChildCount int
}

// NewOperationError creates an OperationError without a child count.
func NewOperationError(reason string) *OperationError {
	return &OperationError{Reason: reason}
}

// NewChildrenError creates an OperationError that reports how many children block the operation.
func NewChildrenError(reason string, childCount int) *OperationError {
	return &OperationError{Reason: reason, ChildCount: childCount}
}

func (e *OperationError) Error() string {
	if e.ChildCount > 0 {
		return fmt.Sprintf("%s (%d children)", e.Reason, e.ChildCount)
	}
	return e.Reason
}

func (e *OperationError) Unwrap() error {
	return ErrInvalidOperation
}

// Validationf builds an error wrapping ErrValidation with a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
