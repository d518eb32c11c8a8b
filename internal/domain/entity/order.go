package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRefundExceedsTotal is returned when appending a refund would push the
// refunded sum past the order total.
var ErrRefundExceedsTotal = errors.New("refund sum exceeds order total")

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Placed, awaiting staff confirmation.
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by staff.
	OrderStatusRefunded  OrderStatus = "refunded"  // Terminal: refunds reached the order total.
)

// Order is one element of the shopping history. Items, totals and delivery
// selection are immutable once the order is created; adjustments arrive only
// as appended, staff-signed sub-records.
type Order struct {
	ID               uuid.UUID `json:"id"`
	Items            []CartItem `json:"items"`
	TotalAmount      int64      `json:"total_amount"`
	DiscountedAmount int64      `json:"discounted_amount"` // Portion of the total priced through batch discounts.
	DeliveryType     string     `json:"delivery_type"`
	Address          string     `json:"address"`
	Area             string     `json:"area"`
	PaymentMethod    string     `json:"payment_method"`
	Status           OrderStatus `json:"status"`
	PlacedAt         time.Time   `json:"placed_at"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
	ReceiptRef       string      `json:"receipt_ref,omitempty"`

	Refunds      []Refund      `json:"refunds,omitempty"`
	Replacements []Replacement `json:"replacements,omitempty"`
	Corrections  []Correction  `json:"corrections,omitempty"`
}

// Refund is an appended, signed adjustment. It never mutates the order core.
type Refund struct {
	ID             uuid.UUID `json:"id"`
	Amount         int64     `json:"amount"`
	Reason         string    `json:"reason,omitempty"`
	StaffID        string    `json:"staff_id"`
	StaffSignature string    `json:"staff_signature"`
	CreatedAt      time.Time `json:"created_at"`
}

// Replacement records a staff-signed item swap on a delivered order.
type Replacement struct {
	ID                   uuid.UUID `json:"id"`
	OriginalProductID    string    `json:"original_product_id"`
	ReplacementProductID string    `json:"replacement_product_id"`
	Quantity             int       `json:"quantity"`
	StaffID              string    `json:"staff_id"`
	StaffSignature       string    `json:"staff_signature"`
	CreatedAt            time.Time `json:"created_at"`
}

// Correction records a staff-signed free-form note against an order.
type Correction struct {
	ID             uuid.UUID `json:"id"`
	Note           string    `json:"note"`
	StaffID        string    `json:"staff_id"`
	StaffSignature string    `json:"staff_signature"`
	CreatedAt      time.Time `json:"created_at"`
}

// RefundedTotal sums the amounts of all appended refunds.
func (o *Order) RefundedTotal() int64 {
	var total int64
	for _, r := range o.Refunds {
		total += r.Amount
	}

	return total
}

// AppendRefund appends a refund sub-record, enforcing the invariant that the
// refunded sum never exceeds the order total. A refund that reaches the
// total transitions the order to its terminal refunded status.
func (o *Order) AppendRefund(refund Refund) error {
	if refund.Amount <= 0 {
		return errors.New("refund amount must be positive")
	}
	if o.RefundedTotal()+refund.Amount > o.TotalAmount {
		return ErrRefundExceedsTotal
	}

	o.Refunds = append(o.Refunds, refund)
	if o.RefundedTotal() == o.TotalAmount {
		o.Status = OrderStatusRefunded
	}

	return nil
}

// CommissionBase returns the amount commission is computed over: the order
// total minus already-discounted line items.
func (o *Order) CommissionBase() int64 {
	return o.TotalAmount - o.DiscountedAmount
}
