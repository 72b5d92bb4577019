package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"outcome/config"
	deliverycontext "outcome/internal/delivery/context"
	"outcome/internal/delivery/http/response"
	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// InternalErrorMessage is sent for every error that is not an AppError.
const InternalErrorMessage = "Internal server error"

// ErrorMiddleware turns every handler error into an ErrorResult response
type ErrorMiddleware struct {
	logger      *slog.Logger
	exposeTrace bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:      logger,
		exposeTrace: cfg.HTTP.ExposeErrorTrace,
	}
}

// Normalize maps err onto an AppError without losing its status, message, details or trace.
func (m *ErrorMiddleware) Normalize(err error) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		switch msg := httpErr.Message.(type) {
		case nil:
		case string:
			if msg != "" {
				message = msg
			}
		default:
			message = fmt.Sprint(msg)
		}

		return domainerrors.NewErrorResult(httpErr.Code, message, nil, errors.StackOf(httpErr.Internal))
	}

	return domainerrors.Wrap(http.StatusInternalServerError, err, InternalErrorMessage)
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	result := m.Normalize(err)
	m.log(c, err, result)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(response.StatusLine(result.HTTPCode()))

		return
	}

	_ = response.Error(c, result, m.exposeTrace)
}

func (m *ErrorMiddleware) log(c echo.Context, err error, result domainerrors.AppError) {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	attrs := []slog.Attr{
		slog.Int("status", result.HTTPCode()),
		slog.String("message", result.Message()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("trace", result.Trace()),
	}

	if cause := errors.Unwrap(result); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	if result.HTTPCode() >= http.StatusInternalServerError {
		attrs = append(attrs, slog.String("error", err.Error()))
		logger.LogAttrs(ctx, slog.LevelError, "Request failed", attrs...)

		return
	}

	logger.LogAttrs(ctx, slog.LevelWarn, "Request rejected", attrs...)
}

// Recover converts panics into 500 ErrorResults that carry the panic stack as their trace.
func Recover() echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(_ echo.Context, err error, stack []byte) error {
			return domainerrors.Wrap(http.StatusInternalServerError, err, InternalErrorMessage).WithTrace(string(stack))
		},
	})
}
