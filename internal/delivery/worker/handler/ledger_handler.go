// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// LedgerHandler applies order events to the referral commission ledger.
type LedgerHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	referrals      usecase.ReferralUsecase
}

// LedgerHandlerParams holds dependencies for the LedgerHandler
type LedgerHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Referrals usecase.ReferralUsecase
}

// NewLedgerHandler creates a new Pub/Sub push handler for ledger events
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	// Only verify push auth for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &LedgerHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		referrals:      params.Referrals,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *LedgerHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse order event
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	if err := h.processOrderEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *LedgerHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processOrderEvent applies one order event to the commission ledger.
// Ledger operations are idempotent per order, so Pub/Sub redeliveries are
// harmless.
func (h *LedgerHandler) processOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order id")
	}
	if event.CustomerPhone == "" {
		return errors.New("missing customer phone")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var delta int64
	switch event.Type {
	case service.OrderEventCompleted:
		delta, err = h.referrals.OnOrderCompleted(ctx, event.CustomerPhone, orderID)
	case service.OrderEventRefunded:
		delta, err = h.referrals.OnOrderRefunded(ctx, event.CustomerPhone, orderID, event.RefundAmount)
	default:
		return errors.Errorf("unknown event type: %s", event.Type)
	}
	if err != nil {
		// A vanished customer cannot be fixed by redelivery; everything else
		// (DB hiccups, lock contention) is worth a retry.
		if errors.Is(errors.Cause(err), repository.ErrCustomerNotFound) {
			return err
		}

		return newRetryableError(err)
	}

	logger.Info("[Worker] Commission ledger updated",
		slog.String("order_id", event.OrderID),
		slog.Int64("commission_delta", delta),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
