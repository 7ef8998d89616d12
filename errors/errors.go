// Package errors provides unified error handling for streamkit.
// It implements structured error types with error codes and detail maps,
// so callers can branch on Code instead of matching message strings.
package errors

import (
	"errors"
	"fmt"
)

// StreamError is the unified streamkit error type.
type StreamError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *StreamError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *StreamError) WithCause(cause error) *StreamError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *StreamError) WithDetail(key string, value any) *StreamError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new StreamError.
func New(code ErrorCode, message string) *StreamError {
	return &StreamError{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err, or "" if err is not a StreamError.
func CodeOf(err error) ErrorCode {
	var se *StreamError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// HasCode reports whether err is a StreamError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// --- Common Error Constructors ---

// Consumed creates a new StreamError for a handle reused after draining.
func Consumed(op string) *StreamError {
	return &StreamError{
		Code: ErrCodeConsumed, Message: fmt.Sprintf("stream already drained; %s requires a fresh handle", op),
		Details: map[string]any{"operation": op},
	}
}

// SourceExhausted creates a new StreamError for a traversal attached twice.
func SourceExhausted() *StreamError {
	return &StreamError{
		Code: ErrCodeSourceExhausted, Message: "traversal has already been consumed by another stream",
	}
}

// TypeMismatch creates a new StreamError for an incompatible element-kind conversion.
func TypeMismatch(want, got string) *StreamError {
	return &StreamError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("cannot convert %s stream to %s", got, want),
		Details: map[string]any{"want": want, "got": got},
	}
}

// InvalidCollector creates a new StreamError for a collector missing a capability.
func InvalidCollector(reason string) *StreamError {
	return &StreamError{
		Code: ErrCodeInvalidCollector, Message: fmt.Sprintf("invalid collector: %s", reason),
	}
}

// InvalidConfig creates a new StreamError for configuration that failed validation.
func InvalidConfig(field, reason string) *StreamError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &StreamError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("invalid configuration: %s", reason),
		Details: details,
	}
}

// MissingField creates a new StreamError for a missing required configuration field.
func MissingField(field string) *StreamError {
	return &StreamError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}
