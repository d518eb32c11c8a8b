package service

import (
	"context"
)

// Order event types carried on the ledger topic.
const (
	OrderEventCompleted = "order.completed"
	OrderEventRefunded  = "order.refunded"
)

// OrderEvent is published after an order commit or refund so the commission
// ledger can be applied out of band. Bookkeeping failures must never block
// the customer-facing order, hence the async hop.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	CustomerPhone string `json:"customer_phone"`
	OrderID       string `json:"order_id"`
	TotalAmount   int64  `json:"total_amount"`
	RefundAmount  int64  `json:"refund_amount,omitempty"` // Only for refund events.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async ledger processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
