package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// EligibilityUsecase computes which discount categories currently apply to a
// customer.
type EligibilityUsecase interface {
	// Recompute derives the eligible category set from the customer's tracked
	// counters, flags and the given time. It is a pure function: identical
	// inputs always yield an identical set, and it never mutates the customer.
	Recompute(ctx context.Context, customer *entity.Customer, now time.Time) ([]entity.EligibleCategory, error)

	// Refresh recomputes a customer's eligible set and persists the new
	// cache on the eligibility record.
	Refresh(ctx context.Context, customer *entity.Customer, now time.Time) ([]entity.EligibleCategory, error)
}
