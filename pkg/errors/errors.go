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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Resolution errors
	ErrIO                ErrorCode = "IO"
	ErrSymlinkResolution ErrorCode = "SYMLINK_RESOLUTION"
	ErrCycleDetected     ErrorCode = "CYCLE_DETECTED"

	// Reserved for wrapper handling; detectors currently fail open
	ErrWrapperParsing ErrorCode = "WRAPPER_PARSING"

	// Reserved for rendering non-UTF-8 paths; the renderer substitutes a
	// placeholder instead of raising this today
	ErrPathEncoding ErrorCode = "PATH_ENCODING"

	// Output errors
	ErrJSONEncode ErrorCode = "JSON_ENCODE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// SymseekError represents a structured error with code and details
type SymseekError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SymseekError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SymseekError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SymseekError) Is(target error) bool {
	var targetErr *SymseekError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SymseekError with the given code and message
func New(code ErrorCode, message string) *SymseekError {
	return &SymseekError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SymseekError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SymseekError {
	return &SymseekError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SymseekError
func Wrap(err error, code ErrorCode, message string) *SymseekError {
	if err == nil {
		return nil
	}
	return &SymseekError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SymseekError {
	if err == nil {
		return nil
	}
	return &SymseekError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SymseekError) WithDetail(key string, value interface{}) *SymseekError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SymseekError) WithDetails(details map[string]interface{}) *SymseekError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var symseekErr *SymseekError
	if errors.As(err, &symseekErr) {
		return symseekErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SymseekError
func GetErrorCode(err error) ErrorCode {
	var symseekErr *SymseekError
	if errors.As(err, &symseekErr) {
		return symseekErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SymseekError
func GetErrorDetails(err error) map[string]interface{} {
	var symseekErr *SymseekError
	if errors.As(err, &symseekErr) {
		return symseekErr.Details
	}
	return nil
}
