package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type referralFixture struct {
	service      usecase.ReferralUsecase
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockCustomerRepository
	gateway      *mockSvc.MockMessageGateway
}

func newReferralFixture(t *testing.T) *referralFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	gateway := mockSvc.NewMockMessageGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Referral: &config.ReferralConfig{CommissionRateBps: 500},
	}

	service := NewReferralService(ReferralServiceParams{
		TxManager: txManager,
		Gateway:   gateway,
		Config:    cfg,
		Logger:    logger,
	})

	return &referralFixture{
		service:      service,
		txManager:    txManager,
		customerRepo: customerRepo,
		gateway:      gateway,
	}
}

// passThroughTx wires the transaction manager mock to run the transactional
// closure against the fixture's repository mocks.
func (f *referralFixture) passThroughTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCustomerRepository().Return(f.customerRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReferralService_RegisterReferral(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	referrer := entity.NewCustomer("+9647001", "IQ", now.Add(-30*24*time.Hour))
	referred := entity.NewCustomer("+9897002", "IR", now)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(referrer, nil)

	var savedEdges []entity.ReferralEdge
	fixture.customerRepo.EXPECT().
		SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).
		Run(func(_ context.Context, _ string, edges []entity.ReferralEdge) {
			savedEdges = edges
		}).
		Return(nil)

	var savedEligibility entity.DiscountEligibility
	fixture.customerRepo.EXPECT().
		UpdateEligibility(ctx, "+9647001", mock.AnythingOfType("entity.DiscountEligibility")).
		Run(func(_ context.Context, _ string, eligibility entity.DiscountEligibility) {
			savedEligibility = eligibility
		}).
		Return(nil)

	fixture.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.OutboundMessage")).
		Return(nil)

	err := fixture.service.RegisterReferral(ctx, "+9647001", referred, now)
	require.NoError(t, err)

	require.NotNil(t, referred.ReferredBy)
	assert.Equal(t, "+9647001", referred.ReferredBy.ReferrerPhone)
	assert.Equal(t, now, referred.ReferredBy.ReferredAt)
	require.NotNil(t, referred.Eligibility.ReferredAt)
	assert.Equal(t, now, *referred.Eligibility.ReferredAt)

	require.Len(t, savedEdges, 1)
	assert.Equal(t, "+9897002", savedEdges[0].CustomerPhone)
	assert.False(t, savedEdges[0].HasPlacedOrder)
	require.Len(t, savedEligibility.Referrals, 1)
	assert.Equal(t, "IR", savedEligibility.Referrals[0].CountryCode)
	assert.Equal(t, now, savedEligibility.Referrals[0].At)
}

func TestReferralService_RegisterReferral_SelfReferral(t *testing.T) {
	fixture := newReferralFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	referred := entity.NewCustomer("+9647001", "IQ", now)

	err := fixture.service.RegisterReferral(ctx, "+9647001", referred, now)
	require.ErrorIs(t, err, ErrSelfReferral)
	assert.Nil(t, referred.ReferredBy)
}

func TestReferralService_RegisterReferral_AlreadyLinked(t *testing.T) {
	fixture := newReferralFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	referred := entity.NewCustomer("+9897002", "IR", now)
	referred.ReferredBy = &entity.ReferralTracking{
		ReferrerPhone: "+9647001",
		ReferredAt:    now.Add(-24 * time.Hour),
	}

	// The link is set once; a second scan is a no-op with no tx.
	err := fixture.service.RegisterReferral(ctx, "+9647003", referred, now)
	require.NoError(t, err)
	assert.Equal(t, "+9647001", referred.ReferredBy.ReferrerPhone)
}

func TestReferralService_RegisterReferral_ReferrerNotFound(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	referred := entity.NewCustomer("+9897002", "IR", now)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(nil, repository.ErrCustomerNotFound)

	err := fixture.service.RegisterReferral(ctx, "+9647001", referred, now)
	require.Error(t, err)
	assert.ErrorIs(t, errors.Cause(err), repository.ErrCustomerNotFound)
	assert.Nil(t, referred.ReferredBy)
}

func TestReferralService_OnOrderCompleted(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:               orderID,
		TotalAmount:      50_000_000,
		DiscountedAmount: 10_000_000,
		Status:           entity.OrderStatusPending,
		PlacedAt:         placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)

	var savedEdges []entity.ReferralEdge
	fixture.customerRepo.EXPECT().
		SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).
		Run(func(_ context.Context, _ string, edges []entity.ReferralEdge) { savedEdges = edges }).
		Return(nil)

	delta, err := fixture.service.OnOrderCompleted(ctx, "+9897002", orderID)
	require.NoError(t, err)

	// 40,000,000 commissionable at the 500 bps default rate.
	assert.Equal(t, int64(2_000_000), delta)

	// Only the referral columns are written; a full-row save from the ledger
	// worker would clobber a concurrent conversation.
	fixture.customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	require.Len(t, savedEdges, 1)
	edge := &savedEdges[0]
	assert.Equal(t, "+9897002", edge.CustomerPhone)
	assert.True(t, edge.HasPlacedOrder)
	assert.Equal(t, 1, edge.TotalOrdersCount)
	assert.Equal(t, int64(50_000_000), edge.TotalSpentAmount)
	assert.Equal(t, int64(2_000_000), edge.CommissionGenerated)
	require.Len(t, edge.Entries, 1)
	assert.Equal(t, orderID, edge.Entries[0].OrderID)
	assert.Equal(t, entity.CommissionEntryOrder, edge.Entries[0].Kind)
}

func TestReferralService_OnOrderCompleted_Replay(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 50_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))
	edge := referrer.EnsureReferralEdge("+9897002", placedAt)
	edge.HasPlacedOrder = true
	edge.TotalOrdersCount = 1
	edge.TotalSpentAmount = 50_000_000
	edge.Append(entity.CommissionEntry{
		ID:      uuid.New(),
		OrderID: orderID,
		Kind:    entity.CommissionEntryOrder,
		Amount:  2_500_000,
	})

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)

	// A redelivered event finds the ledger entry and makes no changes.
	delta, err := fixture.service.OnOrderCompleted(ctx, "+9897002", orderID)
	require.NoError(t, err)
	assert.Zero(t, delta)
	assert.Equal(t, int64(2_500_000), edge.CommissionGenerated)
	assert.Equal(t, 1, edge.TotalOrdersCount)
	require.Len(t, edge.Entries, 1)
}

func TestReferralService_OnOrderCompleted_NotReferred(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	customer := entity.NewCustomer("+9897002", "IR", time.Now())

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)

	delta, err := fixture.service.OnOrderCompleted(ctx, "+9897002", uuid.New())
	require.NoError(t, err)
	assert.Zero(t, delta)
}

func TestReferralService_OnOrderCompleted_BeforeEligibility(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 50_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))
	eligibleSince := placedAt.Add(24 * time.Hour)
	referrer.CommissionEligibleSince = &eligibleSince

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)
	fixture.customerRepo.EXPECT().SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).Return(nil)

	delta, err := fixture.service.OnOrderCompleted(ctx, "+9897002", orderID)
	require.NoError(t, err)
	assert.Zero(t, delta)

	// The zero entry still lands so the event is not reprocessed.
	edge := referrer.ReferralEdge("+9897002")
	require.NotNil(t, edge)
	require.Len(t, edge.Entries, 1)
	assert.Zero(t, edge.Entries[0].Amount)
}

func TestReferralService_OnOrderCompleted_CustomRate(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 10_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))
	referrer.CommissionRateBps = 1000

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)
	fixture.customerRepo.EXPECT().SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).Return(nil)

	delta, err := fixture.service.OnOrderCompleted(ctx, "+9897002", orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), delta)
}

func TestReferralService_OnOrderRefunded_ProportionalClawback(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 50_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))
	edge := referrer.EnsureReferralEdge("+9897002", placedAt)
	edge.TotalSpentAmount = 50_000_000
	edge.Append(entity.CommissionEntry{
		ID:      uuid.New(),
		OrderID: orderID,
		Kind:    entity.CommissionEntryOrder,
		Amount:  2_000_000,
	})

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)
	fixture.customerRepo.EXPECT().SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).Return(nil)

	// Half the order refunded claws back half the commission.
	delta, err := fixture.service.OnOrderRefunded(ctx, "+9897002", orderID, 25_000_000)
	require.NoError(t, err)
	assert.Equal(t, int64(-1_000_000), delta)

	assert.Equal(t, int64(1_000_000), edge.CommissionGenerated)
	assert.Equal(t, int64(25_000_000), edge.TotalSpentAmount)
	require.Len(t, edge.Entries, 2)
	assert.Equal(t, entity.CommissionEntryRefund, edge.Entries[1].Kind)
}

func TestReferralService_OnOrderRefunded_Replay(t *testing.T) {
	fixture := newReferralFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 50_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))
	edge := referrer.EnsureReferralEdge("+9897002", placedAt)
	edge.Append(entity.CommissionEntry{ID: uuid.New(), OrderID: orderID, Kind: entity.CommissionEntryOrder, Amount: 2_000_000})
	edge.Append(entity.CommissionEntry{ID: uuid.New(), OrderID: orderID, Kind: entity.CommissionEntryRefund, Amount: -1_000_000})

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)

	delta, err := fixture.service.OnOrderRefunded(ctx, "+9897002", orderID, 25_000_000)
	require.NoError(t, err)
	assert.Zero(t, delta)
	require.Len(t, edge.Entries, 2)
	assert.Equal(t, int64(1_000_000), edge.CommissionGenerated)
}

func TestReferralService_CommissionConservation(t *testing.T) {
	fixture := newReferralFixture(t)

	ctx := context.Background()
	placedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()

	customer := entity.NewCustomer("+9897002", "IR", placedAt.Add(-48*time.Hour))
	customer.ReferredBy = &entity.ReferralTracking{ReferrerPhone: "+9647001", ReferredAt: placedAt.Add(-48 * time.Hour)}
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 50_000_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    placedAt,
	}}

	referrer := entity.NewCustomer("+9647001", "IQ", placedAt.Add(-90*24*time.Hour))

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCustomerRepository().Return(fixture.customerRepo)
	fixture.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9897002").Return(customer, nil)
	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(referrer, nil)
	fixture.customerRepo.EXPECT().SaveReferralState(ctx, "+9647001", mock.AnythingOfType("[]entity.ReferralEdge")).Return(nil)

	earned, err := fixture.service.OnOrderCompleted(ctx, "+9897002", orderID)
	require.NoError(t, err)

	clawedBack, err := fixture.service.OnOrderRefunded(ctx, "+9897002", orderID, 50_000_000)
	require.NoError(t, err)

	// A full refund zeroes the order's net contribution to the ledger.
	assert.Equal(t, earned, -clawedBack)
	edge := referrer.ReferralEdge("+9897002")
	require.NotNil(t, edge)
	assert.Zero(t, edge.CommissionGenerated)
}
