package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase finalizes checkouts and applies staff adjustments to the
// append-only shopping history.
type OrderUsecase interface {
	// PlaceOrder turns the customer's cart into an order on the in-memory
	// aggregate: stock and prices are re-validated against the live catalog,
	// the order is appended to the history, the purchase is recorded on the
	// eligibility counters and the cart is emptied. The caller commits the
	// aggregate. Idempotent on the order id.
	PlaceOrder(ctx context.Context, customer *entity.Customer, orderID uuid.UUID) (*entity.Order, error)

	// PublishCompleted runs the post-commit side effects of a placed order:
	// the receipt artifact is uploaded and the completion event is published
	// for the commission ledger worker.
	PublishCompleted(ctx context.Context, customerPhone string, order *entity.Order) error

	// AppendRefund appends a staff-signed refund to an order and publishes
	// the refund event. Enforces the refund-sum invariant.
	AppendRefund(ctx context.Context, phone string, orderID uuid.UUID, amount int64, reason, staffToken string) (*entity.Refund, error)
}
