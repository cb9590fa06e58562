package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "wildtrack/internal/domain/errors"
	"wildtrack/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own HTTP mapping
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.respond(c, appErr.HTTPCode(), appErr.Message(), &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		})

		return
	}

	// Storage gateway errors become store-execute failures with the
	// collection and operation preserved in the details
	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		wrapped := domainerrors.NewStoreExecuteError(storeErr, storeErr.Error())
		m.respond(c, wrapped.HTTPCode(), wrapped.Message(), &domainerrors.ErrorInfo{
			Code:    wrapped.ErrorCode(),
			Details: wrapped.Details(),
		})

		return
	}

	// Echo's own HTTP errors (404, 405, body limits, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
		m.respond(c, httpErr.Code, message, &domainerrors.ErrorInfo{
			Code:    "HTTP_ERROR",
			Details: message,
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.respond(c, http.StatusInternalServerError, "Internal server error", &domainerrors.ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Details: err.Error(),
	})
}

func (m *ErrorMiddleware) respond(c echo.Context, code int, message string, info *domainerrors.ErrorInfo) {
	writeErr := c.JSON(code, domainerrors.Response{
		Success: false,
		Code:    code,
		Message: message,
		Error:   info,
	})
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.String("error", writeErr.Error()))
	}
}
