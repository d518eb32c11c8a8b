package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// webhookRequest is the gateway's webhook wire format for one inbound
// message.
type webhookRequest struct {
	MessageID string `json:"message_id"`
	From      string `json:"from" validate:"required"`
	Text      string `json:"text"`
	MediaRef  string `json:"media_ref"`
	Timestamp int64  `json:"timestamp"` // Unix seconds; zero means "now".
}

// WebhookHandler receives gateway webhook deliveries and feeds them into the
// conversation engine.
type WebhookHandler struct {
	logger       *slog.Logger
	dedupGate    usecase.DedupGate
	conversation usecase.ConversationUsecase
}

// WebhookHandlerParams holds dependencies for the WebhookHandler
type WebhookHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	DedupGate    usecase.DedupGate
	Conversation usecase.ConversationUsecase
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		logger:       params.Logger,
		dedupGate:    params.DedupGate,
		conversation: params.Conversation,
	}
}

// HandleInbound normalizes one webhook delivery, drops redeliveries at the
// dedup gate and runs the conversation transition.
func (h *WebhookHandler) HandleInbound(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_ENVELOPE", "failed to parse webhook payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_ENVELOPE", "sender is required")
	}

	timestamp := time.Now().UTC()
	if req.Timestamp > 0 {
		timestamp = time.Unix(req.Timestamp, 0).UTC()
	}

	msg := &entity.InboundMessage{
		Sender:            req.From,
		Body:              req.Text,
		MediaRef:          req.MediaRef,
		ProviderMessageID: req.MessageID,
		Timestamp:         timestamp,
	}

	requestID := deliverycontext.GetRequestID(c)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	if h.dedupGate.Seen(msg) {
		reqLogger.Info("Duplicate webhook delivery dropped",
			slog.String("provider_message_id", req.MessageID),
		)

		return response.Success(c, http.StatusOK, map[string]string{"status": "duplicate"}, "")
	}

	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.conversation.HandleInbound(ctx, msg); err != nil {
		reqLogger.Error("Failed to handle inbound message",
			slog.String("sender", req.From),
			slog.Any("error", err),
		)

		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "processed"}, "")
}
