package entity

import "time"

// DiscountCategory identifies one of the promotional categories a customer
// can be eligible for.
type DiscountCategory string

const (
	CategoryEveryone            DiscountCategory = "everyone"
	CategoryForemen             DiscountCategory = "foremen"
	CategoryForemenCommission   DiscountCategory = "foremen_commission"
	CategoryReferral3Days       DiscountCategory = "referral_3_days"
	CategoryNewCustomerReferred DiscountCategory = "new_customer_referred"
	CategoryNewCustomer         DiscountCategory = "new_customer"
	CategoryShopping30M         DiscountCategory = "shopping_30m"
	CategoryShopping100M60Days  DiscountCategory = "shopping_100m_60d"
)

// AllDiscountCategories lists every category in evaluation order.
var AllDiscountCategories = []DiscountCategory{
	CategoryEveryone,
	CategoryForemen,
	CategoryForemenCommission,
	CategoryReferral3Days,
	CategoryNewCustomerReferred,
	CategoryNewCustomer,
	CategoryShopping30M,
	CategoryShopping100M60Days,
}

// EligibleCategory is one entry of the computed eligible set.
type EligibleCategory struct {
	Category      DiscountCategory `json:"category"`
	EligibleSince time.Time        `json:"eligible_since"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"` // Nil for open-ended categories.
	IsActive      bool             `json:"is_active"`
}

// ReferralSignal is one referral counted toward the referral discount
// window, carrying the referred customer's country code so the country
// policy can be applied at recompute time.
type ReferralSignal struct {
	At          time.Time `json:"at"`
	CountryCode string    `json:"country_code"`
}

// PurchaseStat is a compact record of one completed purchase, appended per
// order so eligibility thresholds can be evaluated without walking the full
// order history.
type PurchaseStat struct {
	Amount int64     `json:"amount"`
	At     time.Time `json:"at"`
}

// DiscountEligibility is the per-customer eligibility record. The tracked
// counters are the source of truth; Categories is strictly a cache of a pure
// function over them and can always be rebuilt.
type DiscountEligibility struct {
	AccountCreatedAt time.Time        `json:"account_created_at"`
	ReferredAt       *time.Time       `json:"referred_at,omitempty"`
	Referrals        []ReferralSignal `json:"referrals,omitempty"`
	Purchases        []PurchaseStat   `json:"purchases,omitempty"`

	Categories   []EligibleCategory `json:"categories,omitempty"`
	RecomputedAt time.Time          `json:"recomputed_at"`
}

// LastPurchaseAtLeast returns the most recent purchase date with an amount
// of at least min, or nil.
func (e *DiscountEligibility) LastPurchaseAtLeast(min int64) *time.Time {
	var last *time.Time
	for i := range e.Purchases {
		p := e.Purchases[i]
		if p.Amount < min {
			continue
		}
		if last == nil || p.At.After(*last) {
			last = &e.Purchases[i].At
		}
	}

	return last
}

// TrailingSpend sums purchases within the trailing window ending at now.
func (e *DiscountEligibility) TrailingSpend(window time.Duration, now time.Time) int64 {
	cutoff := now.Add(-window)

	var total int64
	for _, p := range e.Purchases {
		if p.At.After(cutoff) && !p.At.After(now) {
			total += p.Amount
		}
	}

	return total
}

// TotalSpend sums all tracked purchases.
func (e *DiscountEligibility) TotalSpend() int64 {
	var total int64
	for _, p := range e.Purchases {
		total += p.Amount
	}

	return total
}

// Category returns the cached entry for a category, or nil.
func (e *DiscountEligibility) Category(category DiscountCategory) *EligibleCategory {
	for i := range e.Categories {
		if e.Categories[i].Category == category {
			return &e.Categories[i]
		}
	}

	return nil
}
