package response

import (
	"encoding/json"
	"net/http"

	domainerrors "outcome/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DefaultMessage is used when a SuccessResult is built without a message.
const DefaultMessage = "success"

// SuccessResult is the payload returned by handlers on the success path.
// Success is derived from the status code once, at construction.
type SuccessResult struct {
	statusCode int
	data       any
	message    string
	success    bool
}

// successBody is the wire form of SuccessResult.
type successBody struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewSuccessResult builds a SuccessResult; an empty message falls back to DefaultMessage.
func NewSuccessResult(statusCode int, data any, message string) SuccessResult {
	if message == "" {
		message = DefaultMessage
	}

	return SuccessResult{
		statusCode: statusCode,
		data:       data,
		message:    message,
		success:    statusCode < http.StatusBadRequest,
	}
}

func (r SuccessResult) StatusCode() int {
	return r.statusCode
}

func (r SuccessResult) Data() any {
	return r.data
}

func (r SuccessResult) Message() string {
	return r.message
}

func (r SuccessResult) Success() bool {
	return r.success
}

// MarshalJSON renders {statusCode, data, message, success}.
func (r SuccessResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(successBody{
		StatusCode: r.statusCode,
		Data:       r.data,
		Message:    r.message,
		Success:    r.success,
	})
}

// Success writes a SuccessResult with the given status code
func Success(c echo.Context, statusCode int, data any, message string) error {
	result := NewSuccessResult(statusCode, data, message)

	return c.JSON(StatusLine(result.StatusCode()), result)
}

// Created writes a 201 SuccessResult
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes err as an ErrorResult body. The trace is only copied into the body when includeTrace is set.
func Error(c echo.Context, err domainerrors.AppError, includeTrace bool) error {
	return c.JSON(StatusLine(err.HTTPCode()), domainerrors.ToResponse(err, includeTrace))
}

// StatusLine maps statusCode onto a final HTTP status; the body still carries the caller's code.
// Informational 1xx codes and anything outside the three-digit range become 500.
func StatusLine(statusCode int) int {
	if statusCode < http.StatusOK || statusCode > 999 {
		return http.StatusInternalServerError
	}

	return statusCode
}
