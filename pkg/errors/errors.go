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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Markup errors
	ErrParse            ErrorCode = "PARSE"
	ErrUnknownReference ErrorCode = "UNKNOWN_REFERENCE"
	ErrCyclicAlias      ErrorCode = "CYCLIC_ALIAS"
	ErrSemantics        ErrorCode = "SEMANTICS"
	ErrMacroExecute     ErrorCode = "MACRO_EXECUTE"

	// Color errors
	ErrColorRange ErrorCode = "COLOR_RANGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ZenithError represents a structured error with code and details
type ZenithError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ZenithError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZenithError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ZenithError) Is(target error) bool {
	var targetErr *ZenithError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ZenithError with the given code and message
func New(code ErrorCode, message string) *ZenithError {
	return &ZenithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ZenithError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ZenithError {
	return &ZenithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ZenithError
func Wrap(err error, code ErrorCode, message string) *ZenithError {
	if err == nil {
		return nil
	}
	return &ZenithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZenithError {
	if err == nil {
		return nil
	}
	return &ZenithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ZenithError) WithDetail(key string, value interface{}) *ZenithError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithOffset records the byte offset a markup error occurred at
func (e *ZenithError) WithOffset(offset int) *ZenithError {
	return e.WithDetail("offset", offset)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var zenithErr *ZenithError
	if errors.As(err, &zenithErr) {
		return zenithErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ZenithError
func GetErrorCode(err error) ErrorCode {
	var zenithErr *ZenithError
	if errors.As(err, &zenithErr) {
		return zenithErr.Code
	}
	return ErrUnknown
}

// GetOffset returns the byte offset recorded on a markup error, or -1
// when the error carries none.
func GetOffset(err error) int {
	var zenithErr *ZenithError
	if !errors.As(err, &zenithErr) {
		return -1
	}
	offset, ok := zenithErr.Details["offset"].(int)
	if !ok {
		return -1
	}
	return offset
}
