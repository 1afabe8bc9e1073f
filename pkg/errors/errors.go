package errors

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUnsupported     = "UNSUPPORTED"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is the hard-failure error type of the library. It marks
// programmer errors (bad sort direction, unknown hash algorithm) that
// callers are expected to let propagate rather than recover from.
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

func InvalidArgumentf(format string, args ...any) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func Unsupported(what string) *AppError {
	return &AppError{
		Code:    CodeUnsupported,
		Message: fmt.Sprintf("%s is not supported", what),
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

func IsUnsupported(err error) bool {
	return hasCode(err, CodeUnsupported)
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("an unexpected error occurred", err)
}
