package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument and state errors
const (
	// ErrCodeInvalidArgument indicates a parameter is outside its allowed range.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidOperation indicates the operation is not valid for the sequence, e.g. it is empty.
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates a strict lookup found no matching element.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Aggregation errors
const (
	// ErrCodeArithmetic indicates an aggregate has no defined result for the input.
	ErrCodeArithmetic ErrorCode = "ARITHMETIC_EDGE_CASE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure outside the combinators themselves.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var clientCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument:  true,
	ErrCodeInvalidOperation: true,
	ErrCodeNotFound:         true,
	ErrCodeArithmetic:       true,
	ErrCodeInternal:         false,
}

// IsCallerError returns true if the code reports a mistake in how the
// combinator was called or fed, as opposed to an internal failure.
func IsCallerError(code ErrorCode) bool {
	return clientCodes[code]
}
