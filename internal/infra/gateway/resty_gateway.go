// Package gateway implements the outbound chat gateway client.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	defaultSendTimeout = 10 * time.Second
	defaultRetryCount  = 2
)

type restyGateway struct {
	client *resty.Client
	logger *slog.Logger
}

// sendRequest is the gateway wire format for one outbound message.
type sendRequest struct {
	Recipient string `json:"recipient"`
	Text      string `json:"text,omitempty"`
	MediaRef  string `json:"media_ref,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

// NewRestyGateway creates a message gateway client over the configured HTTP API.
func NewRestyGateway(cfg *config.Config, logger *slog.Logger) (service.MessageGateway, error) {
	if cfg.Gateway == nil || cfg.Gateway.BaseURL == "" {
		return nil, errors.New("gateway base url must be provided")
	}

	timeout := cfg.Gateway.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	retries := cfg.Gateway.RetryCount
	if retries <= 0 {
		retries = defaultRetryCount
	}

	client := resty.New().
		SetBaseURL(cfg.Gateway.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetAuthToken(cfg.Gateway.APIToken).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &restyGateway{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers one outbound message to the customer.
func (g *restyGateway) Send(ctx context.Context, message *entity.OutboundMessage) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			Recipient: message.Recipient,
			Text:      message.Text,
			MediaRef:  message.MediaRef,
			Caption:   message.Caption,
		}).
		Post("/v1/messages")
	if err != nil {
		return errors.Wrap(err, "failed to call gateway")
	}
	if resp.IsError() {
		return errors.Errorf("gateway rejected message: %s (%d)", resp.String(), resp.StatusCode())
	}

	g.logger.DebugContext(ctx, "message sent",
		slog.String("recipient", message.Recipient))

	return nil
}
