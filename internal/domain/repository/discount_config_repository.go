package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrUnknownDiscountCategory is returned for a category id with no policy.
var ErrUnknownDiscountCategory = errors.New("unknown discount category")

// DiscountWindowConfig is the resolved window/threshold policy of one
// discount category. The eligibility engine treats this as authoritative
// and never hardcodes a value it could read from here.
type DiscountWindowConfig struct {
	WindowDays           int
	MinReferrals         int
	ExtraDaysPerReferral int
	MinSpend             int64
	SinglePurchaseMin    int64
	TrailingSpendMin     int64
	TrailingDays         int
	MaxAccountAgeDays    int
}

// ReferralCountryPolicy is the literal allow/deny rule applied to referral
// signals: blocked codes are rejected first, then only allowed codes pass.
type ReferralCountryPolicy struct {
	Blocked []string
	Allowed []string
}

// Permits applies the policy to a country code.
func (p ReferralCountryPolicy) Permits(countryCode string) bool {
	for _, blocked := range p.Blocked {
		if countryCode == blocked {
			return false
		}
	}
	for _, allowed := range p.Allowed {
		if countryCode == allowed {
			return true
		}
	}

	return false
}

// DiscountConfigRepository resolves per-category discount policies.
type DiscountConfigRepository interface {
	// WindowConfig returns the policy for a discount category.
	WindowConfig(ctx context.Context, category entity.DiscountCategory) (*DiscountWindowConfig, error)

	// CountryPolicy returns the referral country policy.
	CountryPolicy(ctx context.Context) (*ReferralCountryPolicy, error)
}
