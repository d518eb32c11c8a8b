package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockCustomerRepository
	catalogRepo  *mockRepo.MockCatalogRepository
	staffTokens  *mockSvc.MockStaffTokenService
	publisher    *mockSvc.MockEventPublisher
	mediaStore   *mockSvc.MockMediaStore
}

func newOrderFixture(t *testing.T) *orderFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	staffTokens := mockSvc.NewMockStaffTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		CatalogRepo: catalogRepo,
		StaffTokens: staffTokens,
		Publisher:   publisher,
		MediaStore:  mediaStore,
		Config:      &config.Config{},
		Logger:      logger,
	})

	return &orderFixture{
		service:      service,
		txManager:    txManager,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		staffTokens:  staffTokens,
		publisher:    publisher,
		mediaStore:   mediaStore,
	}
}

func (f *orderFixture) passThroughTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCustomerRepository().Return(f.customerRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func riceProduct() *entity.Product {
	return &entity.Product{
		ID:         "rice-basmati",
		CategoryID: "grains",
		Name:       "Basmati Rice",
		Stock:      40,
		Variants: []entity.Variant{
			{Label: "1kg", Price: 45_000},
			{Label: "5kg", Price: 200_000},
		},
		Active: true,
	}
}

func checkoutReadyCustomer(now time.Time) *entity.Customer {
	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Name = "Ahmed"
	customer.Address = "12 Harbor Street, Karrada"
	customer.Area = "Karrada"
	customer.Session.SelectedPayment = "cash_on_delivery"
	customer.Cart.DeliveryType = "standard"
	customer.Cart.Add(entity.CartItem{
		ProductID: "rice-basmati",
		Name:      "Basmati Rice",
		Variant:   "5kg",
		UnitPrice: 200_000,
		Quantity:  2,
	}, now)

	return customer
}

func TestOrderService_PlaceOrder(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := checkoutReadyCustomer(now)
	orderID := uuid.New()

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(riceProduct(), nil)

	order, err := fixture.service.PlaceOrder(ctx, customer, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, int64(400_000), order.TotalAmount)
	assert.Zero(t, order.DiscountedAmount)
	assert.Equal(t, "standard", order.DeliveryType)
	assert.Equal(t, "12 Harbor Street, Karrada", order.Address)
	assert.Equal(t, "cash_on_delivery", order.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "receipts/"+orderID.String()+".txt", order.ReceiptRef)

	assert.True(t, customer.Cart.IsEmpty())
	assert.Empty(t, customer.Cart.DeliveryType)
	require.Len(t, customer.Eligibility.Purchases, 1)
	assert.Equal(t, int64(400_000), customer.Eligibility.Purchases[0].Amount)
}

func TestOrderService_PlaceOrder_IdempotentReplay(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := checkoutReadyCustomer(now)
	orderID := uuid.New()

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(riceProduct(), nil).
		Once()

	first, err := fixture.service.PlaceOrder(ctx, customer, orderID)
	require.NoError(t, err)

	// Replaying the same confirmation returns the placed order without
	// touching the catalog or appending anything.
	second, err := fixture.service.PlaceOrder(ctx, customer, orderID)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Len(t, customer.Orders, 1)
	assert.Len(t, customer.Eligibility.Purchases, 1)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := entity.NewCustomer("+9647001", "IQ", now)

	_, err := fixture.service.PlaceOrder(ctx, customer, uuid.New())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_PlaceOrder_PriceDrift(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := checkoutReadyCustomer(now)

	repriced := riceProduct()
	repriced.Variants[1].Price = 220_000

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(repriced, nil)

	_, err := fixture.service.PlaceOrder(ctx, customer, uuid.New())
	require.ErrorIs(t, err, ErrPriceChanged)

	// The cart now carries the live price so the re-confirmation shows what
	// the customer will actually pay.
	assert.Equal(t, int64(220_000), customer.Cart.Items[0].UnitPrice)
	assert.Empty(t, customer.Orders)
}

func TestOrderService_PlaceOrder_DiscountedLineKeepsCapturedPrice(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := entity.NewCustomer("+9647001", "IQ", now.Add(-time.Hour))
	customer.Session.SelectedPayment = "cash_on_delivery"
	customer.Cart.DeliveryType = "pickup"
	customer.Cart.Add(entity.CartItem{
		ProductID:  "rice-basmati",
		Name:       "Basmati Rice",
		Variant:    "5kg",
		UnitPrice:  150_000, // Batch offer price below the live catalog price.
		Quantity:   1,
		Discounted: true,
	}, now)

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(riceProduct(), nil)

	order, err := fixture.service.PlaceOrder(ctx, customer, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), order.TotalAmount)
	assert.Equal(t, int64(150_000), order.DiscountedAmount)
}

func TestOrderService_PlaceOrder_ItemUnavailable(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := checkoutReadyCustomer(now)

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(nil, repository.ErrProductNotFound)

	_, err := fixture.service.PlaceOrder(ctx, customer, uuid.New())
	require.ErrorIs(t, err, ErrItemUnavailable)
	assert.Empty(t, customer.Orders)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	customer := checkoutReadyCustomer(now)

	lowStock := riceProduct()
	lowStock.Stock = 1

	fixture.catalogRepo.EXPECT().
		FindProductByID(ctx, "rice-basmati").
		Return(lowStock, nil)

	_, err := fixture.service.PlaceOrder(ctx, customer, uuid.New())
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestOrderService_PublishCompleted(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:          orderID,
		Items:       []entity.CartItem{{ProductID: "rice-basmati", Name: "Basmati Rice", Variant: "5kg", UnitPrice: 200_000, Quantity: 2}},
		TotalAmount: 400_000,
		PlacedAt:    time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ReceiptRef:  "receipts/" + orderID.String() + ".txt",
	}

	fixture.mediaStore.EXPECT().
		Put(ctx, order.ReceiptRef, mock.Anything, "text/plain; charset=utf-8").
		Return(order.ReceiptRef, nil)

	var published *service.OrderEvent
	fixture.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(nil)

	err := fixture.service.PublishCompleted(ctx, "+9647001", order)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, service.OrderEventCompleted, published.Type)
	assert.Equal(t, "+9647001", published.CustomerPhone)
	assert.Equal(t, orderID.String(), published.OrderID)
	assert.Equal(t, int64(400_000), published.TotalAmount)
	assert.NotEmpty(t, published.EventID)
}

func TestOrderService_PublishCompleted_ReceiptUploadFailureIsNonFatal(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         uuid.New(),
		ReceiptRef: "receipts/x.txt",
		PlacedAt:   time.Now(),
	}

	fixture.mediaStore.EXPECT().
		Put(ctx, order.ReceiptRef, mock.Anything, "text/plain; charset=utf-8").
		Return("", assert.AnError)

	fixture.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	err := fixture.service.PublishCompleted(ctx, "+9647001", order)
	require.NoError(t, err)
}

func TestOrderService_AppendRefund(t *testing.T) {
	fixture := newOrderFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	orderID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", time.Now().Add(-time.Hour))
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 400_000,
		Status:      entity.OrderStatusConfirmed,
	}}

	fixture.staffTokens.EXPECT().
		Verify("staff-token").
		Return(&service.StaffClaims{StaffID: "staff-42"}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		AppendRefund(ctx, "+9647001", orderID, mock.AnythingOfType("entity.Refund")).
		Return(nil)

	var published *service.OrderEvent
	fixture.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(nil)

	refund, err := fixture.service.AppendRefund(ctx, "+9647001", orderID, 100_000, "damaged bag", "staff-token")
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), refund.Amount)
	assert.Equal(t, "staff-42", refund.StaffID)
	assert.Equal(t, "staff-token", refund.StaffSignature)

	// Partial refund leaves the order in its current status.
	assert.Equal(t, entity.OrderStatusConfirmed, customer.Orders[0].Status)
	require.Len(t, customer.Orders[0].Refunds, 1)

	require.NotNil(t, published)
	assert.Equal(t, service.OrderEventRefunded, published.Type)
	assert.Equal(t, int64(100_000), published.RefundAmount)
}

func TestOrderService_AppendRefund_FullRefundTerminates(t *testing.T) {
	fixture := newOrderFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	orderID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", time.Now().Add(-time.Hour))
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 400_000,
		Status:      entity.OrderStatusConfirmed,
		Refunds:     []entity.Refund{{ID: uuid.New(), Amount: 150_000}},
	}}

	fixture.staffTokens.EXPECT().
		Verify("staff-token").
		Return(&service.StaffClaims{StaffID: "staff-42"}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		AppendRefund(ctx, "+9647001", orderID, mock.AnythingOfType("entity.Refund")).
		Return(nil)

	fixture.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	_, err := fixture.service.AppendRefund(ctx, "+9647001", orderID, 250_000, "order cancelled", "staff-token")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRefunded, customer.Orders[0].Status)
}

func TestOrderService_AppendRefund_ExceedsTotal(t *testing.T) {
	fixture := newOrderFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	orderID := uuid.New()
	customer := entity.NewCustomer("+9647001", "IQ", time.Now().Add(-time.Hour))
	customer.Orders = []entity.Order{{
		ID:          orderID,
		TotalAmount: 400_000,
		Status:      entity.OrderStatusConfirmed,
	}}

	fixture.staffTokens.EXPECT().
		Verify("staff-token").
		Return(&service.StaffClaims{StaffID: "staff-42"}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	_, err := fixture.service.AppendRefund(ctx, "+9647001", orderID, 500_000, "", "staff-token")
	require.ErrorIs(t, err, entity.ErrRefundExceedsTotal)
	assert.Empty(t, customer.Orders[0].Refunds)
}

func TestOrderService_AppendRefund_InvalidToken(t *testing.T) {
	fixture := newOrderFixture(t)

	ctx := context.Background()

	fixture.staffTokens.EXPECT().
		Verify("forged").
		Return(nil, assert.AnError)

	_, err := fixture.service.AppendRefund(ctx, "+9647001", uuid.New(), 100_000, "", "forged")
	require.ErrorIs(t, err, domainerrors.ErrStaffTokenInvalid)
}

func TestOrderService_AppendRefund_OrderNotFound(t *testing.T) {
	fixture := newOrderFixture(t)
	fixture.passThroughTx(t)

	ctx := context.Background()
	customer := entity.NewCustomer("+9647001", "IQ", time.Now().Add(-time.Hour))

	fixture.staffTokens.EXPECT().
		Verify("staff-token").
		Return(&service.StaffClaims{StaffID: "staff-42"}, nil)

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+9647001").
		Return(customer, nil)

	_, err := fixture.service.AppendRefund(ctx, "+9647001", uuid.New(), 100_000, "", "staff-token")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}
