// Package response defines the JSON envelope shared by the webhook and the
// staff API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for every API reply. Data is set on success,
// Error on failure; Code always mirrors the HTTP status.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo names the failure in machine-readable form, e.g. "ORDER_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success writes a 2xx envelope around data.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func fail(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode},
	})
}

// BadRequest rejects malformed input.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusBadRequest, errorCode, message)
}

// BindingError rejects a payload that failed binding or validation.
func BindingError(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized rejects a missing or invalid staff token.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusUnauthorized, errorCode, message)
}

// NotFound reports an unknown customer, order or complaint.
func NotFound(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusNotFound, errorCode, message)
}

// Conflict reports a request that contradicts current state, for instance a
// refund exceeding what is left of the order total.
func Conflict(c echo.Context, errorCode string, message string) error {
	return fail(c, http.StatusConflict, errorCode, message)
}
