package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"outcome/internal/errors"
)

// DefaultMessage is used when an ErrorResult is built without a message.
const DefaultMessage = "Something went wrong"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // User-friendly error message
	Errors() []any   // Detail records (validation failures etc.)
	Trace() string   // Server-side diagnostic trace
}

// FieldError describes a single field-level failure inside ErrorResult.Errors.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"error"`
}

// ErrorResult is the failure payload returned by every API handler.
// Values are immutable once built; the With* methods return copies.
type ErrorResult struct {
	statusCode int
	message    string
	errors     []any
	trace      string
	cause      error
}

// NewErrorResult builds an ErrorResult. An empty message falls back to DefaultMessage,
// nil details become an empty list and an empty trace is replaced by the caller's stack.
func NewErrorResult(statusCode int, message string, details []any, trace string) *ErrorResult {
	return newErrorResult(1, statusCode, message, details, trace)
}

// newErrorResult captures the stack skip frames above its own caller when trace is empty.
func newErrorResult(skip, statusCode int, message string, details []any, trace string) *ErrorResult {
	if message == "" {
		message = DefaultMessage
	}
	if details == nil {
		details = []any{}
	}
	if trace == "" {
		trace = errors.Callers(skip + 1)
	}

	return &ErrorResult{
		statusCode: statusCode,
		message:    message,
		errors:     details,
		trace:      trace,
	}
}

// Wrap normalizes err into an ErrorResult. The trace is taken from err when it was
// created or wrapped through pkg/errors, otherwise from the caller of Wrap.
func Wrap(statusCode int, err error, message string) *ErrorResult {
	result := newErrorResult(1, statusCode, message, nil, errors.StackOf(err))
	result.cause = err

	return result
}

// BadRequest returns a 400 ErrorResult.
func BadRequest(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusBadRequest, message, details, "")
}

// Unauthorized returns a 401 ErrorResult.
func Unauthorized(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusUnauthorized, message, details, "")
}

// Forbidden returns a 403 ErrorResult.
func Forbidden(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusForbidden, message, details, "")
}

// NotFound returns a 404 ErrorResult.
func NotFound(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusNotFound, message, details, "")
}

// Conflict returns a 409 ErrorResult.
func Conflict(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusConflict, message, details, "")
}

// Internal returns a 500 ErrorResult.
func Internal(message string, details ...any) *ErrorResult {
	return newErrorResult(1, http.StatusInternalServerError, message, details, "")
}

// Error implements the error interface
func (e *ErrorResult) Error() string {
	return e.message
}

// Unwrap returns the error this result was built from, if any.
func (e *ErrorResult) Unwrap() error {
	return e.cause
}

// StatusCode returns the status code supplied at construction.
func (e *ErrorResult) StatusCode() int {
	return e.statusCode
}

// HTTPCode returns the HTTP status code
func (e *ErrorResult) HTTPCode() int {
	return e.statusCode
}

// Message returns the user-friendly error message
func (e *ErrorResult) Message() string {
	return e.message
}

// Data is always nil for failures.
func (e *ErrorResult) Data() any {
	return nil
}

// Success is always false, whatever the status code.
func (e *ErrorResult) Success() bool {
	return false
}

// Errors returns the detail records in the order they were supplied.
func (e *ErrorResult) Errors() []any {
	return e.errors
}

// Trace returns the diagnostic trace.
func (e *ErrorResult) Trace() string {
	return e.trace
}

// WithErrors returns a copy carrying details instead of the current records.
func (e *ErrorResult) WithErrors(details ...any) *ErrorResult {
	cloned := *e
	if details == nil {
		details = []any{}
	}
	cloned.errors = details

	return &cloned
}

// WithTrace returns a copy carrying trace. An empty trace keeps the current one.
func (e *ErrorResult) WithTrace(trace string) *ErrorResult {
	cloned := *e
	if trace != "" {
		cloned.trace = trace
	}

	return &cloned
}

// Format prints the message; %+v adds the trace.
func (e *ErrorResult) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%d %s\n%s", e.statusCode, e.message, e.trace)

			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.message)
	}
}

// LogValue keeps the cause in logs; MarshalJSON only carries the client-facing fields.
func (e *ErrorResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", e.statusCode),
		slog.String("message", e.message),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// MarshalJSON renders the client-facing shape. The trace is never included.
func (e *ErrorResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(Response{
		StatusCode: e.statusCode,
		Data:       nil,
		Message:    e.message,
		Success:    false,
		Errors:     e.errors,
	})
}
