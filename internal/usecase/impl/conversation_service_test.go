package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/lock"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conversationFixture struct {
	service       *conversationService
	txManager     *mockRepo.MockTransactionManager
	customerRepo  *mockRepo.MockCustomerRepository
	catalogRepo   *mockRepo.MockCatalogRepository
	complaintRepo *mockRepo.MockComplaintRepository
	eligibility   *mockUC.MockEligibilityUsecase
	orders        *mockUC.MockOrderUsecase
	referrals     *mockUC.MockReferralUsecase
	qrcodes       *mockSvc.MockQRCodeService
	gateway       *mockSvc.MockMessageGateway

	sent []*entity.OutboundMessage
}

func newConversationFixture(t *testing.T, now time.Time) *conversationFixture {
	fixture := &conversationFixture{
		txManager:     mockRepo.NewMockTransactionManager(t),
		customerRepo:  mockRepo.NewMockCustomerRepository(t),
		catalogRepo:   mockRepo.NewMockCatalogRepository(t),
		complaintRepo: mockRepo.NewMockComplaintRepository(t),
		eligibility:   mockUC.NewMockEligibilityUsecase(t),
		orders:        mockUC.NewMockOrderUsecase(t),
		referrals:     mockUC.NewMockReferralUsecase(t),
		qrcodes:       mockSvc.NewMockQRCodeService(t),
		gateway:       mockSvc.NewMockMessageGateway(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCustomerRepository().Return(fixture.customerRepo).Maybe()
	factory.EXPECT().NewComplaintRepository().Return(fixture.complaintRepo).Maybe()

	fixture.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	fixture.gateway.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.OutboundMessage")).
		RunAndReturn(func(_ context.Context, message *entity.OutboundMessage) error {
			fixture.sent = append(fixture.sent, message)

			return nil
		}).
		Maybe()

	service := NewConversationService(ConversationServiceParams{
		Locks:        lock.NewKeyedMutex(),
		TxManager:    fixture.txManager,
		CustomerRepo: fixture.customerRepo,
		CatalogRepo:  fixture.catalogRepo,
		Eligibility:  fixture.eligibility,
		Orders:       fixture.orders,
		Referrals:    fixture.referrals,
		QRCodes:      fixture.qrcodes,
		MediaStore:   mockSvc.NewMockMediaStore(t),
		Gateway:      fixture.gateway,
		Config:       &config.Config{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*conversationService)
	service.now = func() time.Time { return now }
	fixture.service = service

	return fixture
}

func (f *conversationFixture) sentTexts() []string {
	texts := make([]string, 0, len(f.sent))
	for _, message := range f.sent {
		texts = append(texts, message.Text)
	}

	return texts
}

func (f *conversationFixture) sentContaining(substr string) bool {
	for _, text := range f.sentTexts() {
		if strings.Contains(text, substr) {
			return true
		}
	}

	return false
}

func inbound(sender, body string) *entity.InboundMessage {
	return &entity.InboundMessage{
		Sender:            sender,
		Body:              body,
		ProviderMessageID: uuid.NewString(),
		Timestamp:         time.Now(),
	}
}

func TestConversationService_HandleInbound_NewCustomer(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(nil, repository.ErrCustomerNotFound)

	fixture.qrcodes.EXPECT().
		ParseReferralQR("hello").
		Return("", assert.AnError)

	var created *entity.Customer
	fixture.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) { created = customer }).
		Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "hello"))
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "+9647001", created.Phone)
	assert.Equal(t, "IQ", created.CountryCode)
	assert.Equal(t, entity.FlowOnboarding, created.Session.Flow)
	assert.Equal(t, entity.StepAskName, created.Session.Step)
	assert.Equal(t, now, created.Session.LastInboundAt)

	require.Len(t, fixture.sent, 2)
	assert.Equal(t, "Welcome to Bazaar!", fixture.sent[0].Text)
	assert.Equal(t, "What's your name?", fixture.sent[1].Text)
}

func TestConversationService_HandleInbound_NewCustomerWithInvite(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9897002").
		Return(nil, repository.ErrCustomerNotFound)

	fixture.qrcodes.EXPECT().
		ParseReferralQR(mock.AnythingOfType("string")).
		Return("+9647001", nil)

	fixture.referrals.EXPECT().
		RegisterReferral(ctx, "+9647001", mock.AnythingOfType("*entity.Customer"), now).
		Return(nil)

	fixture.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9897002", "BAZAAR-REF:+9647001"))
	require.NoError(t, err)

	assert.True(t, fixture.sentContaining("You joined through a friend's invite"))
	assert.True(t, fixture.sentContaining("What's your name?"))
}

func TestConversationService_HandleInbound_InvalidInviteIsIgnored(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9897002").
		Return(nil, repository.ErrCustomerNotFound)

	fixture.qrcodes.EXPECT().
		ParseReferralQR(mock.AnythingOfType("string")).
		Return("+9897002", nil)

	// Self-referral fails inside the referral usecase; onboarding continues.
	fixture.referrals.EXPECT().
		RegisterReferral(ctx, "+9897002", mock.AnythingOfType("*entity.Customer"), now).
		Return(ErrSelfReferral)

	fixture.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9897002", "BAZAAR-REF:+9897002"))
	require.NoError(t, err)

	assert.False(t, fixture.sentContaining("friend's invite"))
	assert.True(t, fixture.sentContaining("What's your name?"))
}

func TestConversationService_HandleInbound_OnboardingCapturesName(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Minute))

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "Ahmed"))
	require.NoError(t, err)

	assert.Equal(t, "Ahmed", customer.Name)
	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Equal(t, entity.StepRoot, customer.Session.Step)
	assert.True(t, fixture.sentContaining("Nice to meet you, Ahmed!"))
	assert.True(t, fixture.sentContaining("Main menu"))
}

func TestConversationService_HandleInbound_GlobalEscape(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Name = "Ahmed"
	customer.Session.MoveTo(entity.FlowCheckout, entity.StepConfirmOrder, now.Add(-time.Minute))
	customer.Session.SelectedPayment = "cash_on_delivery"
	customer.Session.PendingOrderID = uuid.NewString()

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "0"))
	require.NoError(t, err)

	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Equal(t, entity.StepRoot, customer.Session.Step)
	assert.Empty(t, customer.Session.SelectedPayment)
	assert.Empty(t, customer.Session.PendingOrderID)
	assert.True(t, fixture.sentContaining("Main menu"))
}

func TestConversationService_HandleInbound_MenuGuardsEmptyCartCheckout(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo(entity.FlowMenu, entity.StepRoot, now.Add(-time.Minute))

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "3"))
	require.NoError(t, err)

	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Equal(t, entity.StepRoot, customer.Session.Step)
	assert.True(t, fixture.sentContaining("Your cart is empty"))
	assert.True(t, fixture.sentContaining("Main menu"))
}

func TestConversationService_HandleInbound_UnknownStepResets(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo("legacy", "retired_step", now.Add(-time.Minute))

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "hello?"))
	require.NoError(t, err)

	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Equal(t, entity.StepRoot, customer.Session.Step)
	assert.True(t, fixture.sentContaining("start over"))
}

func TestConversationService_HandleInbound_ConfirmOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	orderID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo(entity.FlowCheckout, entity.StepConfirmOrder, now.Add(-time.Minute))
	customer.Session.PendingOrderID = orderID.String()
	customer.Session.SelectedPayment = "cash_on_delivery"
	customer.Cart.DeliveryType = "standard"
	customer.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 200_000, Quantity: 2}, now)

	placed := &entity.Order{
		ID:          orderID,
		TotalAmount: 400_000,
		Status:      entity.OrderStatusPending,
		PlacedAt:    now,
	}

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.orders.EXPECT().PlaceOrder(ctx, customer, orderID).Return(placed, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	// The completion event fires only after the commit.
	fixture.orders.EXPECT().
		PublishCompleted(ctx, "+9647001", mock.AnythingOfType("*entity.Order")).
		Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "1"))
	require.NoError(t, err)

	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Equal(t, entity.StepRoot, customer.Session.Step)
	assert.Empty(t, customer.Session.PendingOrderID)
	assert.True(t, fixture.sentContaining("placed!"))
}

func TestConversationService_HandleInbound_ConfirmOrder_PriceChanged(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	orderID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo(entity.FlowCheckout, entity.StepConfirmOrder, now.Add(-time.Minute))
	customer.Session.PendingOrderID = orderID.String()
	customer.Session.SelectedPayment = "cash_on_delivery"
	customer.Cart.DeliveryType = "standard"
	customer.Cart.Add(entity.CartItem{ProductID: "rice-basmati", Name: "Basmati Rice", UnitPrice: 220_000, Quantity: 2}, now)

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.orders.EXPECT().PlaceOrder(ctx, customer, orderID).Return(nil, ErrPriceChanged)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "1"))
	require.NoError(t, err)

	// The customer stays at the confirmation step with the same pending order
	// id, so the eventual confirmation still commits exactly one order.
	assert.Equal(t, entity.StepConfirmOrder, customer.Session.Step)
	assert.Equal(t, orderID.String(), customer.Session.PendingOrderID)
	assert.True(t, fixture.sentContaining("Some prices changed"))
	assert.True(t, fixture.sentContaining("Please confirm your order"))
}

func TestConversationService_HandleInbound_CommitFailureNotifiesCustomer(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Minute))

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(assert.AnError)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "Ahmed"))
	require.Error(t, err)

	// None of the queued replies go out when the transition did not commit,
	// but the customer hears that their message wasn't processed instead of
	// silence. The gateway still redelivers the webhook for a full retry.
	require.Len(t, fixture.sent, 1)
	assert.True(t, fixture.sentContaining("wasn't processed"))
}

func TestConversationService_HandleInbound_ComplaintCommitsWithTransition(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	complaintID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo(entity.FlowSupport, entity.StepDescribeIssue, now.Add(-time.Minute))
	customer.Session.PendingComplaintID = complaintID.String()

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)

	var filed *entity.Complaint
	fixture.complaintRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Complaint")).
		Run(func(_ context.Context, complaint *entity.Complaint) { filed = complaint }).
		Return(nil)

	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "My rice bag arrived torn"))
	require.NoError(t, err)

	require.NotNil(t, filed)
	assert.Equal(t, complaintID, filed.ID)
	assert.Equal(t, "+9647001", filed.CustomerPhone)
	assert.Equal(t, "My rice bag arrived torn", filed.Text)
	assert.Equal(t, entity.ComplaintStatusOpen, filed.Status)

	assert.Equal(t, entity.FlowMenu, customer.Session.Flow)
	assert.Empty(t, customer.Session.PendingComplaintID)
	assert.True(t, fixture.sentContaining("your ticket"))
}

func TestConversationService_HandleInbound_ShortComplaintRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	fixture := newConversationFixture(t, now)
	ctx := context.Background()

	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.MoveTo(entity.FlowSupport, entity.StepDescribeIssue, now.Add(-time.Minute))
	customer.Session.PendingComplaintID = uuid.NewString()

	fixture.customerRepo.EXPECT().FindByPhone(ctx, "+9647001").Return(customer, nil)
	fixture.customerRepo.EXPECT().Save(ctx, customer).Return(nil)

	err := fixture.service.HandleInbound(ctx, inbound("+9647001", "bad"))
	require.NoError(t, err)

	assert.Equal(t, entity.StepDescribeIssue, customer.Session.Step)
	assert.True(t, fixture.sentContaining("a bit more detail"))
}

func TestCountryCodeFromPhone(t *testing.T) {
	cases := map[string]string{
		"+9647701234567": "IQ",
		"+989121234567":  "IR",
		"+905321234567":  "TR",
		"+931234567":     "AF",
		"+14155551234":   "US",
		"+9999999":       "",
	}

	for phone, expected := range cases {
		assert.Equal(t, expected, countryCodeFromPhone(phone), phone)
	}
}
