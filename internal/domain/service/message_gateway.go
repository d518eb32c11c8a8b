// Package service defines interfaces for core, stateless domain logic and
// for the external collaborators the engine talks to.
package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// MessageGateway is the outbound side of the chat channel. Delivery retries
// and rate limiting belong to the gateway client, not to callers; sends
// after a committed transition are fire-and-forget.
type MessageGateway interface {
	// Send delivers one outbound message to the customer.
	Send(ctx context.Context, message *entity.OutboundMessage) error
}
