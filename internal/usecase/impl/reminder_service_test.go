package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/lock"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	service      usecase.ReminderUsecase
	customerRepo *mockRepo.MockCustomerRepository
	gateway      *mockSvc.MockMessageGateway
	mediaStore   *mockSvc.MockMediaStore
}

func newReminderFixture(t *testing.T) *reminderFixture {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	gateway := mockSvc.NewMockMessageGateway(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	cfg := &config.Config{
		Scheduler: &config.SchedulerConfig{
			SweepInterval:      5 * time.Minute,
			AbandonedCartAfter: 2 * time.Hour,
			OfferMediaTTL:      24 * time.Hour,
			PickupReminderHour: 9,
		},
	}

	service := NewReminderService(ReminderServiceParams{
		Locks:        lock.NewKeyedMutex(),
		CustomerRepo: customerRepo,
		Gateway:      gateway,
		MediaStore:   mediaStore,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &reminderFixture{
		service:      service,
		customerRepo: customerRepo,
		gateway:      gateway,
		mediaStore:   mediaStore,
	}
}

func TestReminderService_SweepPendingConfirmations(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-2 * time.Hour)

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	customer.Orders = []entity.Order{
		// Crossed the cutoff during the last sweep interval: nudged.
		{ID: uuid.New(), Status: entity.OrderStatusPending, PlacedAt: cutoff.Add(-time.Minute)},
		// Crossed it long ago: already nudged on an earlier sweep.
		{ID: uuid.New(), Status: entity.OrderStatusPending, PlacedAt: cutoff.Add(-time.Hour)},
		// Confirmed orders are never nudged.
		{ID: uuid.New(), Status: entity.OrderStatusConfirmed, PlacedAt: cutoff.Add(-time.Minute)},
		// Still inside the grace period.
		{ID: uuid.New(), Status: entity.OrderStatusPending, PlacedAt: now.Add(-time.Hour)},
	}

	fixture.customerRepo.EXPECT().
		FindPendingOrdersBefore(ctx, cutoff).
		Return([]*entity.Customer{customer}, nil)

	var nudges []*entity.OutboundMessage
	fixture.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.OutboundMessage")).
		Run(func(_ context.Context, message *entity.OutboundMessage) {
			nudges = append(nudges, message)
		}).
		Return(nil)

	sent, err := fixture.service.SweepPendingConfirmations(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, nudges, 1)
	assert.Equal(t, "+9647001", nudges[0].Recipient)
	assert.Contains(t, nudges[0].Text, shortID(customer.Orders[0].ID))
}

func TestReminderService_SendAbandonedCartReminders(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	customer.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 45_000, Quantity: 1}, now.Add(-3*time.Hour))

	fixture.customerRepo.EXPECT().
		FindWithAbandonedCarts(ctx, now.Add(-2*time.Hour)).
		Return([]*entity.Customer{customer}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		SaveSession(ctx, "+9647001", mock.AnythingOfType("entity.Session"), mock.AnythingOfType("entity.Cart")).
		Return(nil)

	fixture.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.OutboundMessage")).
		Return(nil)

	sent, err := fixture.service.SendAbandonedCartReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.NotNil(t, customer.Session.ReminderSentAt)
	assert.Equal(t, now, *customer.Session.ReminderSentAt)
}

func TestReminderService_SendAbandonedCartReminders_SkipsResumedCart(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Stale in the candidate query, but the customer resumed shopping before
	// the sweep got the lock.
	stale := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	stale.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 45_000, Quantity: 1}, now.Add(-3*time.Hour))

	fresh := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	fresh.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 45_000, Quantity: 2}, now.Add(-time.Minute))

	fixture.customerRepo.EXPECT().
		FindWithAbandonedCarts(ctx, now.Add(-2*time.Hour)).
		Return([]*entity.Customer{stale}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(fresh, nil)

	sent, err := fixture.service.SendAbandonedCartReminders(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Nil(t, fresh.Session.ReminderSentAt)
}

func TestReminderService_SendAbandonedCartReminders_SingleReminderPerCart(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	customer.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 45_000, Quantity: 1}, now.Add(-5*time.Hour))
	alreadySent := now.Add(-2 * time.Hour)
	customer.Session.ReminderSentAt = &alreadySent

	fixture.customerRepo.EXPECT().
		FindWithAbandonedCarts(ctx, now.Add(-2*time.Hour)).
		Return([]*entity.Customer{customer}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	sent, err := fixture.service.SendAbandonedCartReminders(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminderService_SendPickupReminders(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	// Sweep lands just past the 09:00 reminder hour.
	now := time.Date(2026, 3, 10, 9, 2, 0, 0, time.UTC)

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-72*time.Hour))
	customer.Orders = []entity.Order{
		// Placed yesterday, pickup, still pending: reminded this sweep.
		{ID: uuid.New(), Status: entity.OrderStatusPending, DeliveryType: "pickup", PlacedAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)},
		// Delivery orders never get a pickup reminder.
		{ID: uuid.New(), Status: entity.OrderStatusPending, DeliveryType: "standard", PlacedAt: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)},
		// Placed today: reminder due tomorrow.
		{ID: uuid.New(), Status: entity.OrderStatusPending, DeliveryType: "pickup", PlacedAt: now.Add(-time.Hour)},
		// Reminded on an earlier sweep.
		{ID: uuid.New(), Status: entity.OrderStatusPending, DeliveryType: "pickup", PlacedAt: time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)},
	}

	fixture.customerRepo.EXPECT().
		FindPendingOrdersBefore(ctx, now).
		Return([]*entity.Customer{customer}, nil)

	var reminders []*entity.OutboundMessage
	fixture.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.OutboundMessage")).
		Run(func(_ context.Context, message *entity.OutboundMessage) {
			reminders = append(reminders, message)
		}).
		Return(nil)

	sent, err := fixture.service.SendPickupReminders(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, reminders, 1)
	assert.Contains(t, reminders[0].Text, shortID(customer.Orders[0].ID))
}

func TestReminderService_DefaultsWithoutSchedulerConfig(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	gateway := mockSvc.NewMockMessageGateway(t)
	mediaStore := mockSvc.NewMockMediaStore(t)

	// No scheduler section at all; the sweeps must still run on defaults.
	service := NewReminderService(ReminderServiceParams{
		Locks:        lock.NewKeyedMutex(),
		CustomerRepo: customerRepo,
		Gateway:      gateway,
		MediaStore:   mediaStore,
		Config:       &config.Config{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().
		FindPendingOrdersBefore(ctx, now.Add(-2*time.Hour)).
		Return(nil, nil)

	sent, err := service.SweepPendingConfirmations(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, sent)

	customerRepo.EXPECT().
		FindWithAbandonedCarts(ctx, now.Add(-2*time.Hour)).
		Return(nil, nil)

	sent, err = service.SendAbandonedCartReminders(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, sent)

	customerRepo.EXPECT().
		FindPendingOrdersBefore(ctx, now).
		Return(nil, nil)

	sent, err = service.SendPickupReminders(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, sent)

	// Media expiry stays off when no TTL is configured.
	deleted, err := service.ExpireOfferMedia(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestReminderService_ExpireOfferMedia(t *testing.T) {
	fixture := newReminderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fixture.mediaStore.EXPECT().
		List(ctx, "referrals/").
		Return([]service.MediaObject{
			{Key: "referrals/+9647001.png", ModTime: now.Add(-48 * time.Hour)},
			{Key: "referrals/+9647002.png", ModTime: now.Add(-time.Hour)},
		}, nil)

	fixture.mediaStore.EXPECT().
		Delete(ctx, "referrals/+9647001.png").
		Return(nil)

	deleted, err := fixture.service.ExpireOfferMedia(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}
