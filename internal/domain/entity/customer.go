// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the aggregate root of the conversational commerce engine.
// A customer is identified by phone number and carries the live cart, the
// conversation session, the append-only shopping history, referral tracking
// and the cached discount eligibility record.
type Customer struct {
	Phone       string    `json:"phone"`        // Primary key for the conversation.
	Name        string    `json:"name"`         // Captured during onboarding.
	Address     string    `json:"address"`      // Default delivery address.
	Area        string    `json:"area"`         // Delivery area/zone.
	CountryCode string    `json:"country_code"` // ISO country code derived from the phone number.
	Active      bool      `json:"active"`       // Soft-deactivation flag; customers are never hard-deleted.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Foreman flags gate the foremen discount categories.
	IsForeman         bool `json:"is_foreman"`
	ForemanCommission bool `json:"foreman_commission"`

	// CommissionRateBps overrides the configured default referrer rate when
	// non-zero.
	CommissionRateBps int `json:"commission_rate_bps"`

	// CommissionEligibleSince marks when this customer became eligible to
	// earn referral commission. Orders placed by referred customers before
	// this point generate no commission.
	CommissionEligibleSince *time.Time `json:"commission_eligible_since,omitempty"`

	Cart    Cart    `json:"cart"`
	Session Session `json:"session"`

	// ReferredBy links this customer to their referrer, set once at referral
	// time and never rewritten.
	ReferredBy *ReferralTracking `json:"referred_by,omitempty"`

	// Referrals holds the referral edges this customer created, one per
	// referred customer.
	Referrals []ReferralEdge `json:"referrals,omitempty"`

	Eligibility DiscountEligibility `json:"eligibility"`

	// Orders is the append-only shopping history. Orders are immutable once
	// finalized; adjustments arrive as signed sub-records.
	Orders []Order `json:"orders,omitempty"`
}

// NewCustomer creates a customer on first contact, parked at the onboarding
// name-capture step.
func NewCustomer(phone, countryCode string, now time.Time) *Customer {
	return &Customer{
		Phone:       phone,
		CountryCode: countryCode,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		Session:     NewSession(FlowOnboarding, StepAskName, now),
		Eligibility: DiscountEligibility{AccountCreatedAt: now},
	}
}

// Order returns the order with the given id, or nil if this customer never
// placed it.
func (c *Customer) Order(orderID uuid.UUID) *Order {
	for i := range c.Orders {
		if c.Orders[i].ID == orderID {
			return &c.Orders[i]
		}
	}

	return nil
}

// ReferralEdge returns the edge for a referred customer, or nil.
func (c *Customer) ReferralEdge(phone string) *ReferralEdge {
	for i := range c.Referrals {
		if c.Referrals[i].CustomerPhone == phone {
			return &c.Referrals[i]
		}
	}

	return nil
}

// EnsureReferralEdge returns the edge for a referred customer, creating it
// when absent. Creation is idempotent per (referrer, referred) pair.
func (c *Customer) EnsureReferralEdge(phone string, now time.Time) *ReferralEdge {
	if edge := c.ReferralEdge(phone); edge != nil {
		return edge
	}

	c.Referrals = append(c.Referrals, ReferralEdge{
		CustomerPhone: phone,
		CreatedAt:     now,
	})

	return &c.Referrals[len(c.Referrals)-1]
}

// TotalSpend sums the totals of all non-refunded orders.
func (c *Customer) TotalSpend() int64 {
	var total int64
	for i := range c.Orders {
		if c.Orders[i].Status == OrderStatusRefunded {
			continue
		}
		total += c.Orders[i].TotalAmount
	}

	return total
}

// HasCompletedOrder reports whether at least one purchase happened.
func (c *Customer) HasCompletedOrder() bool {
	for i := range c.Orders {
		if c.Orders[i].Status != OrderStatusRefunded {
			return true
		}
	}

	return false
}
