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

	// Path resolution errors
	ErrHomeResolve ErrorCode = "HOME_RESOLVE"

	// Configuration errors
	ErrDefaultConfigMissing ErrorCode = "DEFAULT_CONFIG_MISSING"
	ErrConfigParse          ErrorCode = "CONFIG_PARSE"
	ErrConfigWatch          ErrorCode = "CONFIG_WATCH"
	ErrSettingsLoad         ErrorCode = "SETTINGS_LOAD"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// GesturedError represents a structured error with code and details
type GesturedError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GesturedError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GesturedError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GesturedError) Is(target error) bool {
	var targetErr *GesturedError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GesturedError with the given code and message
func New(code ErrorCode, message string) *GesturedError {
	return &GesturedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GesturedError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GesturedError {
	return &GesturedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GesturedError
func Wrap(err error, code ErrorCode, message string) *GesturedError {
	if err == nil {
		return nil
	}
	return &GesturedError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GesturedError {
	if err == nil {
		return nil
	}
	return &GesturedError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GesturedError) WithDetail(key string, value interface{}) *GesturedError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gerr *GesturedError
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GesturedError
func GetErrorCode(err error) ErrorCode {
	var gerr *GesturedError
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return ErrUnknown
}
