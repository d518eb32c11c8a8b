package entity

import (
	"time"

	"github.com/google/uuid"
)

// BatchDiscount is a named, versioned allocation of a discount price to a
// set of products within one discount category, comparable to a coupon
// batch. Product membership is held as embedded references.
type BatchDiscount struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Version       int              `json:"version"`
	Category      DiscountCategory `json:"category"`
	ProductIDs    []string         `json:"product_ids"`
	DiscountPrice int64            `json:"discount_price"`
	Active        bool             `json:"active"`
	StartsAt      time.Time        `json:"starts_at"`
	EndsAt        time.Time        `json:"ends_at"`
}

// Covers reports whether the batch applies to the product.
func (b *BatchDiscount) Covers(productID string) bool {
	for _, id := range b.ProductIDs {
		if id == productID {
			return true
		}
	}

	return false
}

// Open reports whether the batch is active and inside its validity window.
func (b *BatchDiscount) Open(now time.Time) bool {
	return b.Active && !now.Before(b.StartsAt) && now.Before(b.EndsAt)
}
