package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferralUsecase links referred customers to their referrer and maintains
// the commission ledger. The ledger operations return the commission delta
// applied to the referrer's balance, zero when the order carries none.
type ReferralUsecase interface {
	// RegisterReferral records that the referred customer joined through the
	// referrer's invite: the link is set on the referred aggregate (committed
	// by the caller), while the referrer's edge and eligibility signal are
	// persisted here. Idempotent; a second call is a no-op.
	RegisterReferral(ctx context.Context, referrerPhone string, referred *entity.Customer, now time.Time) error

	// OnOrderCompleted attributes commission for a completed order to the
	// customer's referrer, if any. Idempotent per order id.
	OnOrderCompleted(ctx context.Context, customerPhone string, orderID uuid.UUID) (int64, error)

	// OnOrderRefunded appends a negative adjustment proportional to the
	// refunded amount. Idempotent per order id.
	OnOrderRefunded(ctx context.Context, customerPhone string, orderID uuid.UUID, refundAmount int64) (int64, error)
}
