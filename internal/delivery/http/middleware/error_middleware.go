package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"tesotunes/internal/delivery/http/response"
	domainerrors "tesotunes/internal/domain/errors"

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

	// Validation failures carry per-field details for the client form.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = c.JSON(validationErr.HTTPCode(), response.Response{
			Success: false,
			Code:    validationErr.HTTPCode(),
			Message: validationErr.Message(),
			Data:    map[string]any{"errors": validationErr.Fields},
			Error: &response.ErrorInfo{
				Code:    validationErr.ErrorCode(),
				Details: validationErr.Details(),
			},
		})

		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := fmt.Sprintf("%v", httpErr.Message)
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: msg,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: msg,
			},
		})

		return
	}

	// Default to internal error, log and return a generic message.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: "",
		},
	})
}
