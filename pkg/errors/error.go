package errors

import (
	"errors"
	"fmt"
)

var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error extends error with a stable code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// AppError is the application error carried from services to transports.
type AppError struct {
	code    string
	message string
	fields  map[string]string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message returns the caller-facing message without the wrapped cause.
func (e *AppError) Message() string {
	return e.message
}

// Fields returns per-field validation messages, if any.
func (e *AppError) Fields() map[string]string {
	return e.fields
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NewValidationError creates a VALIDATION error carrying per-field messages.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		code:    ErrValidation,
		message: "validation failed",
		fields:  fields,
	}
}

// NewFieldError is a shorthand for a single-field validation error.
func NewFieldError(field, message string) *AppError {
	return NewValidationError(map[string]string{field: message})
}

// NotFound creates a NOT_FOUND error.
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// Wrap wraps err keeping the code of an inner AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return &AppError{code: appErr.Code(), message: message, fields: appErr.fields, err: err}
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of err, or INTERNAL when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}
