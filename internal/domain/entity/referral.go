package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralTracking links a customer to the referrer who brought them in.
// Set once at referral time and never rewritten.
type ReferralTracking struct {
	ReferrerPhone string    `json:"referrer_phone"`
	ReferredAt    time.Time `json:"referred_at"`
}

// CommissionEntryKind distinguishes ledger entry origins.
type CommissionEntryKind string

const (
	CommissionEntryOrder  CommissionEntryKind = "order"  // Positive entry from a completed order.
	CommissionEntryRefund CommissionEntryKind = "refund" // Negative adjustment from a refund.
)

// CommissionEntry is one immutable line of the referral commission ledger.
// Refunds append negative entries; existing entries are never edited.
type CommissionEntry struct {
	ID        uuid.UUID           `json:"id"`
	OrderID   uuid.UUID           `json:"order_id"`
	Kind      CommissionEntryKind `json:"kind"`
	Amount    int64               `json:"amount"` // Signed: positive for orders, negative for refunds.
	CreatedAt time.Time           `json:"created_at"`
}

// ReferralEdge links a referrer to one referred customer and accumulates
// that customer's contribution to the referrer's commission.
type ReferralEdge struct {
	CustomerPhone    string    `json:"customer_phone"`
	HasPlacedOrder   bool      `json:"has_placed_order"`
	TotalOrdersCount int       `json:"total_orders_count"`
	TotalSpentAmount int64     `json:"total_spent_amount"`
	CreatedAt        time.Time `json:"created_at"`

	// CommissionGenerated is adjusted only through appended ledger entries,
	// never recomputed from scratch.
	CommissionGenerated int64             `json:"commission_generated"`
	Entries             []CommissionEntry `json:"entries,omitempty"`
}

// Append records a ledger entry and moves the running balance.
func (e *ReferralEdge) Append(entry CommissionEntry) {
	e.Entries = append(e.Entries, entry)
	e.CommissionGenerated += entry.Amount
}

// HasEntryForOrder reports whether a ledger entry of the given kind already
// exists for the order. Used to keep commission side effects idempotent.
func (e *ReferralEdge) HasEntryForOrder(orderID uuid.UUID, kind CommissionEntryKind) bool {
	for _, entry := range e.Entries {
		if entry.OrderID == orderID && entry.Kind == kind {
			return true
		}
	}

	return false
}
