package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"

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

	meta := &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.ErrorResponse{
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Message: appErr.Message(),
				Details: appErr.Details(),
			},
			Meta: meta,
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		c.JSON(httpErr.Code, domainerrors.ErrorResponse{
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Message: message,
			},
			Meta: meta,
		})

		return
	}

	// Default to internal error, log and return a generic payload
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	c.JSON(http.StatusInternalServerError, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		},
		Meta: meta,
	})
}
