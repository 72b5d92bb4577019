package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"outcome/config"
	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(exposeTrace bool) (*ErrorMiddleware, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.HTTP.ExposeErrorTrace = exposeTrace

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewErrorMiddleware(logger, cfg), &buf
}

func serve(t *testing.T, m *ErrorMiddleware, method string, handler echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = m.HandleHTTPError
	e.Use(Recover())
	e.Add(method, "/thing", handler)

	req := httptest.NewRequest(method, "/thing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func TestHandleHTTPError_ErrorResultPassesThrough(t *testing.T) {
	m, logs := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		return domainerrors.NotFound("Not found", domainerrors.FieldError{Field: "id", Reason: "missing"})
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{
		"statusCode": float64(404),
		"data":       nil,
		"message":    "Not found",
		"success":    false,
		"errors":     []any{map[string]any{"field": "id", "error": "missing"}},
	}, body)
	assert.Contains(t, logs.String(), `"msg":"Request rejected"`)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"trace":"outcome/internal/delivery/http/middleware.TestHandleHTTPError_ErrorResultPassesThrough`)
}

func TestHandleHTTPError_WrappedErrorResult(t *testing.T) {
	m, _ := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		return errors.Wrap(domainerrors.Conflict("Already exists"), "create thing")
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Already exists", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m, _ := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large")
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, float64(http.StatusRequestEntityTooLarge), body["statusCode"])
	assert.Equal(t, "Request Entity Too Large", body["message"])
	assert.Equal(t, []any{}, body["errors"])
	assert.Nil(t, body["data"])
}

func TestHandleHTTPError_RouteNotFound(t *testing.T) {
	m, _ := newTestMiddleware(false)

	e := echo.New()
	e.HTTPErrorHandler = m.HandleHTTPError

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestHandleHTTPError_UnknownErrorBecomes500(t *testing.T) {
	m, logs := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		return errors.Errorf("dial tcp: connection refused")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, InternalErrorMessage, body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, body, "trace")
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), "connection refused")
}

func TestHandleHTTPError_LogsCauseOfWrappedFailure(t *testing.T) {
	m, logs := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		cause := errors.Wrap(errors.New("db down: connection refused"), "failed to list notes")

		return domainerrors.Wrap(http.StatusInternalServerError, cause, "Failed to list notes")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to list notes", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")

	out := logs.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"cause":"failed to list notes: db down: connection refused"`)
	assert.Contains(t, out, `"error":"Failed to list notes"`)
	assert.Contains(t, out, `"trace":"outcome/internal/delivery/http/middleware.TestHandleHTTPError_LogsCauseOfWrappedFailure`)
}

func TestHandleHTTPError_ExposeTrace(t *testing.T) {
	m, _ := newTestMiddleware(true)

	_, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		return domainerrors.NewErrorResult(http.StatusBadRequest, "", nil, "custom trace")
	})

	assert.Equal(t, "custom trace", body["trace"])
	assert.Equal(t, domainerrors.DefaultMessage, body["message"])
}

func TestHandleHTTPError_HeadHasNoBody(t *testing.T) {
	m, _ := newTestMiddleware(false)

	rec, body := serve(t, m, http.MethodHead, func(c echo.Context) error {
		return domainerrors.Forbidden("nope")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, body)
}

func TestHandleHTTPError_HeadGuardsStatusLine(t *testing.T) {
	m, _ := newTestMiddleware(false)

	for _, status := range []int{0, 100, 1000} {
		rec, _ := serve(t, m, http.MethodHead, func(c echo.Context) error {
			return domainerrors.NewErrorResult(status, "", nil, "")
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "status %d", status)
	}
}

func TestRecover_PanicBecomes500WithStackTrace(t *testing.T) {
	m, logs := newTestMiddleware(true)

	rec, body := serve(t, m, http.MethodGet, func(c echo.Context) error {
		panic("kaboom")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, InternalErrorMessage, body["message"])
	assert.Contains(t, body["trace"], "goroutine")
	assert.Contains(t, logs.String(), `"cause":"kaboom"`)
}

func TestNormalize(t *testing.T) {
	m, _ := newTestMiddleware(false)

	original := domainerrors.BadRequest("bad")
	assert.Same(t, original, m.Normalize(original))

	fromHTTP := m.Normalize(&echo.HTTPError{Code: http.StatusMethodNotAllowed})
	assert.Equal(t, http.StatusMethodNotAllowed, fromHTTP.HTTPCode())
	assert.Equal(t, "Method Not Allowed", fromHTTP.Message())

	fromOther := m.Normalize(&echo.HTTPError{Code: http.StatusBadRequest, Message: map[string]string{"k": "v"}})
	assert.Equal(t, "map[k:v]", fromOther.Message())

	generic := m.Normalize(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, generic.HTTPCode())
	assert.NotEmpty(t, generic.Trace())
}
