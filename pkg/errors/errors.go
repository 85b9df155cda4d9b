package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Usage errors
	ErrUsage             ErrorCode = "USAGE"
	ErrUnknownCommand    ErrorCode = "UNKNOWN_COMMAND"
	ErrUnsupportedDriver ErrorCode = "UNSUPPORTED_DRIVER"

	// Privilege errors
	ErrPermission ErrorCode = "PERMISSION"

	// Link errors
	ErrResolve ErrorCode = "RESOLVE"
	ErrRemove  ErrorCode = "REMOVE"
	ErrLink    ErrorCode = "LINK"
)

// SwitchError represents a structured error with code and details
type SwitchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The code is kept out of the text so
// the message can be shown to the user as is.
func (e *SwitchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *SwitchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SwitchError) Is(target error) bool {
	var targetErr *SwitchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SwitchError with the given code and message
func New(code ErrorCode, message string) *SwitchError {
	return &SwitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SwitchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SwitchError {
	return &SwitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SwitchError
func Wrap(err error, code ErrorCode, message string) *SwitchError {
	if err == nil {
		return nil
	}
	return &SwitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwitchError {
	if err == nil {
		return nil
	}
	return &SwitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SwitchError) WithDetail(key string, value interface{}) *SwitchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var switchErr *SwitchError
	if errors.As(err, &switchErr) {
		return switchErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SwitchError
func GetErrorCode(err error) ErrorCode {
	var switchErr *SwitchError
	if errors.As(err, &switchErr) {
		return switchErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SwitchError
func GetErrorDetails(err error) map[string]interface{} {
	var switchErr *SwitchError
	if errors.As(err, &switchErr) {
		return switchErr.Details
	}
	return nil
}
