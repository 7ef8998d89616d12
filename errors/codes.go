package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lifecycle errors
const (
	// ErrCodeConsumed indicates a stream handle was reused after a terminal operation.
	ErrCodeConsumed ErrorCode = "STREAM_CONSUMED"
	// ErrCodeSourceExhausted indicates a traversal was attached to more than one stream.
	ErrCodeSourceExhausted ErrorCode = "SOURCE_EXHAUSTED"
)

// Shape/kind errors
const (
	// ErrCodeTypeMismatch indicates an element-kind conversion between incompatible kinds.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidCollector indicates a collector is missing a required capability.
	ErrCodeInvalidCollector ErrorCode = "INVALID_COLLECTOR"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeMissingField indicates a required configuration field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// An unsplittable source requested in parallel mode is deliberately NOT an
// error code: it degrades to single-partition execution. See package stream.
