// Package discountconfig resolves discount window policies from static
// defaults overridden by application configuration.
package discountconfig

import (
	"context"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"go.uber.org/fx"
)

// Default window policies per category. Config entries override a whole
// category's policy, never individual fields.
func defaultWindowConfigs() map[entity.DiscountCategory]*repository.DiscountWindowConfig {
	return map[entity.DiscountCategory]*repository.DiscountWindowConfig{
		entity.CategoryEveryone:          {},
		entity.CategoryForemen:           {},
		entity.CategoryForemenCommission: {},
		entity.CategoryReferral3Days: {
			WindowDays:           3,
			MinReferrals:         3,
			ExtraDaysPerReferral: 1,
		},
		entity.CategoryNewCustomerReferred: {
			WindowDays: 5,
			MinSpend:   1_000_000,
		},
		entity.CategoryNewCustomer: {
			MaxAccountAgeDays: 14,
		},
		entity.CategoryShopping30M: {
			WindowDays:        5,
			SinglePurchaseMin: 30_000_000,
		},
		entity.CategoryShopping100M60Days: {
			WindowDays:       5,
			TrailingDays:     60,
			TrailingSpendMin: 100_000_000,
		},
	}
}

// Referral country policy defaults, applied when config lists are absent.
var (
	defaultBlockedCountries = []string{"IQ", "AF"}
	defaultAllowedCountries = []string{"IR"}
)

type configRepository struct {
	windows map[entity.DiscountCategory]*repository.DiscountWindowConfig
	policy  repository.ReferralCountryPolicy
}

// ConfigRepositoryParams holds dependencies for the discount config
// repository, injected by Fx
type ConfigRepositoryParams struct {
	fx.In

	Config *config.Config
}

// NewConfigRepository builds a DiscountConfigRepository from defaults merged
// with configuration overrides.
func NewConfigRepository(params ConfigRepositoryParams) repository.DiscountConfigRepository {
	windows := defaultWindowConfigs()
	for category, override := range params.Config.Discounts {
		if override == nil {
			continue
		}
		windows[entity.DiscountCategory(category)] = &repository.DiscountWindowConfig{
			WindowDays:           override.WindowDays,
			MinReferrals:         override.MinReferrals,
			ExtraDaysPerReferral: override.ExtraDaysPerReferral,
			MinSpend:             override.MinSpend,
			SinglePurchaseMin:    override.SinglePurchaseMin,
			TrailingSpendMin:     override.TrailingSpendMin,
			TrailingDays:         override.TrailingDays,
			MaxAccountAgeDays:    override.MaxAccountAgeDays,
		}
	}

	policy := repository.ReferralCountryPolicy{
		Blocked: defaultBlockedCountries,
		Allowed: defaultAllowedCountries,
	}
	if params.Config.Referral != nil {
		if len(params.Config.Referral.BlockedCountries) > 0 {
			policy.Blocked = params.Config.Referral.BlockedCountries
		}
		if len(params.Config.Referral.AllowedCountries) > 0 {
			policy.Allowed = params.Config.Referral.AllowedCountries
		}
	}

	return &configRepository{
		windows: windows,
		policy:  policy,
	}
}

// WindowConfig returns the policy for a discount category.
func (r *configRepository) WindowConfig(_ context.Context, category entity.DiscountCategory) (*repository.DiscountWindowConfig, error) {
	cfg, ok := r.windows[category]
	if !ok {
		return nil, repository.ErrUnknownDiscountCategory
	}

	copied := *cfg

	return &copied, nil
}

// CountryPolicy returns the referral country policy.
func (r *configRepository) CountryPolicy(_ context.Context) (*repository.ReferralCountryPolicy, error) {
	policy := r.policy

	return &policy, nil
}
