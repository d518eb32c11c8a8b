package discountconfig

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepository_Defaults(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{}})
	ctx := context.Background()

	referral, err := repo.WindowConfig(ctx, entity.CategoryReferral3Days)
	require.NoError(t, err)
	assert.Equal(t, 3, referral.WindowDays)
	assert.Equal(t, 3, referral.MinReferrals)
	assert.Equal(t, 1, referral.ExtraDaysPerReferral)

	shopping, err := repo.WindowConfig(ctx, entity.CategoryShopping30M)
	require.NoError(t, err)
	assert.Equal(t, int64(30_000_000), shopping.SinglePurchaseMin)

	trailing, err := repo.WindowConfig(ctx, entity.CategoryShopping100M60Days)
	require.NoError(t, err)
	assert.Equal(t, 60, trailing.TrailingDays)
	assert.Equal(t, int64(100_000_000), trailing.TrailingSpendMin)
	assert.Equal(t, 5, trailing.WindowDays)

	newCustomer, err := repo.WindowConfig(ctx, entity.CategoryNewCustomer)
	require.NoError(t, err)
	assert.Equal(t, 14, newCustomer.MaxAccountAgeDays)

	referred, err := repo.WindowConfig(ctx, entity.CategoryNewCustomerReferred)
	require.NoError(t, err)
	assert.Equal(t, 5, referred.WindowDays)
	assert.Equal(t, int64(1_000_000), referred.MinSpend)
}

func TestConfigRepository_ConfigOverridesWholeCategory(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{
		Discounts: map[string]*config.DiscountWindowConfig{
			"referral_3_days": {
				WindowDays:   7,
				MinReferrals: 5,
			},
		},
	}})

	referral, err := repo.WindowConfig(context.Background(), entity.CategoryReferral3Days)
	require.NoError(t, err)
	assert.Equal(t, 7, referral.WindowDays)
	assert.Equal(t, 5, referral.MinReferrals)
	assert.Zero(t, referral.ExtraDaysPerReferral)
}

func TestConfigRepository_UnknownCategory(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{}})

	_, err := repo.WindowConfig(context.Background(), entity.DiscountCategory("mystery"))
	assert.ErrorIs(t, err, repository.ErrUnknownDiscountCategory)
}

func TestConfigRepository_CountryPolicyDefaults(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{}})

	policy, err := repo.CountryPolicy(context.Background())
	require.NoError(t, err)

	assert.False(t, policy.Permits("IQ"))
	assert.False(t, policy.Permits("AF"))
	assert.True(t, policy.Permits("IR"))
	assert.False(t, policy.Permits("TR"))
	assert.False(t, policy.Permits(""))
}

func TestConfigRepository_CountryPolicyOverrides(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{
		Referral: &config.ReferralConfig{
			BlockedCountries: []string{"US"},
			AllowedCountries: []string{"TR", "IR"},
		},
	}})

	policy, err := repo.CountryPolicy(context.Background())
	require.NoError(t, err)

	assert.False(t, policy.Permits("US"))
	assert.True(t, policy.Permits("TR"))
	assert.True(t, policy.Permits("IR"))
	assert.False(t, policy.Permits("IQ"))
}

func TestConfigRepository_ReturnsCopies(t *testing.T) {
	repo := NewConfigRepository(ConfigRepositoryParams{Config: &config.Config{}})
	ctx := context.Background()

	first, err := repo.WindowConfig(ctx, entity.CategoryReferral3Days)
	require.NoError(t, err)
	first.WindowDays = 99

	second, err := repo.WindowConfig(ctx, entity.CategoryReferral3Days)
	require.NoError(t, err)
	assert.Equal(t, 3, second.WindowDays)
}
