package impl

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eligibilityService struct {
	discountConfigRepo repository.DiscountConfigRepository
}

// EligibilityServiceParams holds dependencies for EligibilityService, injected by Fx.
type EligibilityServiceParams struct {
	fx.In

	DiscountConfigRepo repository.DiscountConfigRepository
}

// NewEligibilityService creates a new eligibility service instance
func NewEligibilityService(params EligibilityServiceParams) usecase.EligibilityUsecase {
	return &eligibilityService{
		discountConfigRepo: params.DiscountConfigRepo,
	}
}

// Recompute evaluates every discount category against the customer's tracked
// counters. Categories the customer never qualified for are omitted; ones
// whose window has lapsed are kept with IsActive false so the history stays
// visible.
func (s *eligibilityService) Recompute(ctx context.Context, customer *entity.Customer, now time.Time) ([]entity.EligibleCategory, error) {
	policy, err := s.discountConfigRepo.CountryPolicy(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load referral country policy")
	}

	var result []entity.EligibleCategory
	for _, category := range entity.AllDiscountCategories {
		window, err := s.discountConfigRepo.WindowConfig(ctx, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load window config for %s", category)
		}

		entry := s.evaluate(customer, category, window, policy, now)
		if entry != nil {
			result = append(result, *entry)
		}
	}

	return result, nil
}

// Refresh recomputes the eligible set and installs it as the cached
// Categories on the customer's eligibility record. The caller commits the
// aggregate.
func (s *eligibilityService) Refresh(ctx context.Context, customer *entity.Customer, now time.Time) ([]entity.EligibleCategory, error) {
	categories, err := s.Recompute(ctx, customer, now)
	if err != nil {
		return nil, err
	}

	customer.Eligibility.Categories = categories
	customer.Eligibility.RecomputedAt = now

	return categories, nil
}

func (s *eligibilityService) evaluate(
	customer *entity.Customer,
	category entity.DiscountCategory,
	window *repository.DiscountWindowConfig,
	policy *repository.ReferralCountryPolicy,
	now time.Time,
) *entity.EligibleCategory {
	record := &customer.Eligibility

	switch category {
	case entity.CategoryEveryone:
		return openEnded(category, record.AccountCreatedAt)

	case entity.CategoryForemen:
		if !customer.IsForeman {
			return nil
		}

		return openEnded(category, record.AccountCreatedAt)

	case entity.CategoryForemenCommission:
		if !customer.IsForeman || !customer.ForemanCommission {
			return nil
		}

		return openEnded(category, record.AccountCreatedAt)

	case entity.CategoryReferral3Days:
		return evaluateReferralWindow(record, window, policy, now)

	case entity.CategoryNewCustomerReferred:
		if record.ReferredAt == nil || record.TotalSpend() < window.MinSpend {
			return nil
		}

		return windowed(category, *record.ReferredAt, days(window.WindowDays), now)

	case entity.CategoryNewCustomer:
		// Only customers who have actually bought something qualify; the
		// account-age bound is the window expiry below.
		if len(record.Purchases) == 0 {
			return nil
		}

		return windowed(category, record.AccountCreatedAt, days(window.MaxAccountAgeDays), now)

	case entity.CategoryShopping30M:
		last := record.LastPurchaseAtLeast(window.SinglePurchaseMin)
		if last == nil {
			return nil
		}

		// The window re-anchors on every new qualifying purchase.
		return windowed(category, *last, days(window.WindowDays), now)

	case entity.CategoryShopping100M60Days:
		return evaluateTrailingSpend(record, window, now)
	}

	return nil
}

// evaluateReferralWindow applies the referral discount rule: once the
// customer has brought in the minimum number of permitted referrals, a
// discount window opens at the start of the day of the latest qualifying
// referral, extended by a configured number of days for every referral past
// the minimum.
func evaluateReferralWindow(
	record *entity.DiscountEligibility,
	window *repository.DiscountWindowConfig,
	policy *repository.ReferralCountryPolicy,
	now time.Time,
) *entity.EligibleCategory {
	var (
		count  int
		latest time.Time
	)
	for _, signal := range record.Referrals {
		if !policy.Permits(signal.CountryCode) {
			continue
		}
		count++
		if signal.At.After(latest) {
			latest = signal.At
		}
	}

	if count < window.MinReferrals {
		return nil
	}

	extra := window.ExtraDaysPerReferral * (count - window.MinReferrals)
	anchor := dayStart(latest)

	return windowed(entity.CategoryReferral3Days, anchor, days(window.WindowDays+extra), now)
}

// evaluateTrailingSpend applies the trailing-spend rule: the category is
// active while purchases inside the trailing window sum to at least the
// threshold. EligibleSince is the latest purchase inside the window, and the
// expiry is re-derived from now on every recompute rather than anchored to a
// past purchase.
func evaluateTrailingSpend(
	record *entity.DiscountEligibility,
	window *repository.DiscountWindowConfig,
	now time.Time,
) *entity.EligibleCategory {
	trailing := days(window.TrailingDays)
	if record.TrailingSpend(trailing, now) < window.TrailingSpendMin {
		return nil
	}

	cutoff := now.Add(-trailing)
	var latest time.Time
	for _, p := range record.Purchases {
		if p.At.After(cutoff) && !p.At.After(now) && p.At.After(latest) {
			latest = p.At
		}
	}

	expires := now.Add(days(window.WindowDays))

	return &entity.EligibleCategory{
		Category:      entity.CategoryShopping100M60Days,
		EligibleSince: latest,
		ExpiresAt:     &expires,
		IsActive:      true,
	}
}

func openEnded(category entity.DiscountCategory, since time.Time) *entity.EligibleCategory {
	return &entity.EligibleCategory{
		Category:      category,
		EligibleSince: since,
		IsActive:      true,
	}
}

func windowed(category entity.DiscountCategory, since time.Time, window time.Duration, now time.Time) *entity.EligibleCategory {
	expires := since.Add(window)

	return &entity.EligibleCategory{
		Category:      category,
		EligibleSince: since,
		ExpiresAt:     &expires,
		IsActive:      now.Before(expires) && !now.Before(since),
	}
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
