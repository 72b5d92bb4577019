package handler

import (
	"net/http"
	"strconv"

	"outcome/internal/delivery/http/response"
	domainerrors "outcome/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler serves diagnostic endpoints that return sample results
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint returns a fixed SuccessResult
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	}, "Public endpoint test successful")
}

// TestErrorEndpoint returns an ErrorResult carrying the status from the path,
// so clients can inspect the error shape for any code.
func (h *TestHandler) TestErrorEndpoint(c echo.Context) error {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil || status < 100 || status > 599 {
		return domainerrors.BadRequest("Invalid status code", domainerrors.FieldError{Field: "status", Reason: "must be between 100 and 599"})
	}

	return domainerrors.NewErrorResult(status, c.QueryParam("message"), nil, "")
}

// TestPanicEndpoint panics so the recover path can be observed
func (h *TestHandler) TestPanicEndpoint(c echo.Context) error {
	panic("test panic")
}
