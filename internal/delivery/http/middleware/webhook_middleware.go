package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"bazaar/config"

	"github.com/labstack/echo/v4"
)

// HeaderWebhookSecret carries the shared secret the chat gateway attaches
// to every webhook delivery.
const HeaderWebhookSecret = "X-Webhook-Secret"

// WebhookAuthMiddleware rejects webhook deliveries that do not carry the
// configured shared secret.
type WebhookAuthMiddleware struct {
	secret string
	logger *slog.Logger
}

// NewWebhookAuthMiddleware is the constructor for WebhookAuthMiddleware.
func NewWebhookAuthMiddleware(cfg *config.Config, logger *slog.Logger) *WebhookAuthMiddleware {
	secret := ""
	if cfg.Gateway != nil {
		secret = cfg.Gateway.WebhookSecret
	}

	return &WebhookAuthMiddleware{
		secret: secret,
		logger: logger,
	}
}

// Verify checks the webhook secret header with a constant-time comparison.
// An empty configured secret disables the check for local development.
func (m *WebhookAuthMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.secret == "" {
			return next(c)
		}

		provided := c.Request().Header.Get(HeaderWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
			m.logger.Warn("Webhook delivery rejected",
				slog.String("remote", c.RealIP()),
			)

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}
