package usecase

import (
	"context"
	"time"
)

// ReminderUsecase hosts the periodic background jobs. Each job is
// independent and safe to run concurrently with live conversation traffic;
// the per-customer lock guards against racing an in-flight transition.
type ReminderUsecase interface {
	// SweepPendingConfirmations nudges customers whose orders are still
	// awaiting confirmation past the cutoff.
	SweepPendingConfirmations(ctx context.Context, now time.Time) (int, error)

	// SendAbandonedCartReminders messages customers with stale non-empty carts.
	SendAbandonedCartReminders(ctx context.Context, now time.Time) (int, error)

	// SendPickupReminders reminds customers with pickup orders still awaiting
	// collection, at the configured hour the day after placement.
	SendPickupReminders(ctx context.Context, now time.Time) (int, error)

	// ExpireOfferMedia deactivates expired offer/referral media in the store.
	ExpireOfferMedia(ctx context.Context, now time.Time) (int, error)
}
