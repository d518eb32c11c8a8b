// Package context carries per-request correlation state, a request id and a
// logger tagged with it, across the delivery layers. The same helpers serve
// the webhook endpoint, the staff API and the ledger worker, so one inbound
// message can be traced end to end.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey keeps our context values from colliding with other packages'.
type ContextKey string

const (
	// KeyRequestID carries the correlation id of one inbound message or
	// API call.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger carries the logger pre-tagged with that id.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the wire header the id travels in.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on the echo context, minting a
// fresh one when the middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id from a plain context, empty
// when none was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID attaches the request id to a plain context so it survives
// the hop out of the delivery layer into the usecases.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

// WithLogger attaches a request-scoped logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
