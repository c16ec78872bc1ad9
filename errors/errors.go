package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type for seqkit.
type AppError struct {
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
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code, so that
// errors.Is(err, errors.New(ErrCodeNotFound, "")) matches any NOT_FOUND.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Fields flattens the error into structured log fields.
func (e *AppError) Fields() map[string]any {
	fields := make(map[string]any, len(e.Details)+2)
	for k, v := range e.Details {
		fields[k] = v
	}
	fields["code"] = string(e.Code)
	fields["error"] = e.Message
	return fields
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new AppError for a parameter outside its allowed range.
func InvalidArgument(param, reason string) *AppError {
	details := make(map[string]any)
	if param != "" {
		details["param"] = param
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument %s: %s", param, reason),
		Details: details,
	}
}

// InvalidOperation creates a new AppError for an operation that cannot run on the given sequence.
func InvalidOperation(op, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidOperation, Message: fmt.Sprintf("%s: %s", op, reason),
		Details: map[string]any{"operation": op},
	}
}

// EmptySequence creates an InvalidOperation error for an operation that needs at least one element.
func EmptySequence(op string) *AppError {
	return InvalidOperation(op, "sequence contains no elements")
}

// NotFound creates a new AppError for a lookup that matched no element.
func NotFound(resource string, key any) *AppError {
	details := map[string]any{"resource": resource}
	if key != nil {
		details["key"] = key
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("no %s matches key %v", resource, key),
		Details: details,
	}
}

// ArithmeticEdgeCase creates a new AppError for an aggregate with no defined result.
func ArithmeticEdgeCase(op, reason string) *AppError {
	return &AppError{
		Code: ErrCodeArithmetic, Message: fmt.Sprintf("%s: %s", op, reason),
		Details: map[string]any{"operation": op},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Wrap converts any error into an AppError. AppErrors (wrapped or not) are
// returned as-is; anything else becomes an Internal error. Nil stays nil.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
