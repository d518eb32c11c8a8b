package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// DedupGate decides whether an inbound envelope was already handled. It runs
// before the per-customer lock is acquired.
type DedupGate interface {
	// Seen records the envelope on first sight and reports redeliveries.
	Seen(msg *entity.InboundMessage) bool
}

// ConversationUsecase drives the per-customer conversation state machine.
type ConversationUsecase interface {
	// HandleInbound processes one deduplicated inbound message: loads the
	// session, runs exactly one transition under the customer's lock,
	// persists the new state and sends the replies.
	HandleInbound(ctx context.Context, msg *entity.InboundMessage) error
}
