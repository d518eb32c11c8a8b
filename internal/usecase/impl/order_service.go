package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPriceChanged is returned when a live catalog price no longer matches
	// the cart. The cart is updated in place; the customer must re-confirm.
	ErrPriceChanged = errors.New("cart prices changed")

	// ErrItemUnavailable is returned when a cart line's product was removed
	// or deactivated since it was added.
	ErrItemUnavailable = errors.New("cart item no longer available")

	// ErrInsufficientStock is returned when live stock cannot cover a cart line.
	ErrInsufficientStock = errors.New("insufficient stock")
)

type orderService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	staffTokens service.StaffTokenService
	publisher   service.EventPublisher
	mediaStore  service.MediaStore
	config      *config.Config
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	StaffTokens service.StaffTokenService
	Publisher   service.EventPublisher
	MediaStore  service.MediaStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		staffTokens: params.StaffTokens,
		publisher:   params.Publisher,
		mediaStore:  params.MediaStore,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// PlaceOrder finalizes the cart on the in-memory aggregate. Stock and prices
// are re-validated against the live catalog at this point; nothing cached in
// the conversation is trusted. Idempotent on the order id: replaying a
// confirmation returns the already-placed order untouched.
func (s *orderService) PlaceOrder(ctx context.Context, customer *entity.Customer, orderID uuid.UUID) (*entity.Order, error) {
	if existing := customer.Order(orderID); existing != nil {
		return existing, nil
	}
	if customer.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := s.revalidateCart(ctx, customer); err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]entity.CartItem, len(customer.Cart.Items))
	copy(items, customer.Cart.Items)

	order := entity.Order{
		ID:               orderID,
		Items:            items,
		TotalAmount:      customer.Cart.Total(),
		DiscountedAmount: customer.Cart.DiscountedTotal(),
		DeliveryType:     customer.Cart.DeliveryType,
		Address:          customer.Address,
		Area:             customer.Area,
		PaymentMethod:    customer.Session.SelectedPayment,
		Status:           entity.OrderStatusPending,
		PlacedAt:         now,
		ReceiptRef:       fmt.Sprintf("receipts/%s.txt", orderID),
	}

	customer.Orders = append(customer.Orders, order)
	customer.Eligibility.Purchases = append(customer.Eligibility.Purchases, entity.PurchaseStat{
		Amount: order.TotalAmount,
		At:     now,
	})
	customer.Cart.Clear(now)
	customer.UpdatedAt = now

	return customer.Order(orderID), nil
}

// revalidateCart checks every line against the live catalog. Unavailable
// products and stock shortfalls abort; price drift on non-discounted lines
// updates the cart and reports ErrPriceChanged so the customer re-confirms
// against what they will actually pay. Discounted lines keep their captured
// offer price.
func (s *orderService) revalidateCart(ctx context.Context, customer *entity.Customer) error {
	var drifted bool
	for i := range customer.Cart.Items {
		item := &customer.Cart.Items[i]

		product, err := s.catalogRepo.FindProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(ErrItemUnavailable, item.Name)
			}

			return errors.Wrap(err, "failed to load product")
		}
		if !product.Active {
			return errors.Wrap(ErrItemUnavailable, item.Name)
		}
		if product.Stock < item.Quantity {
			return errors.Wrapf(ErrInsufficientStock, "%s: %d left", item.Name, product.Stock)
		}

		if item.Discounted {
			continue
		}
		if live := product.PriceFor(item.Variant); live != item.UnitPrice {
			item.UnitPrice = live
			drifted = true
		}
	}

	if drifted {
		return ErrPriceChanged
	}

	return nil
}

// PublishCompleted runs after the order commit: the receipt artifact is
// uploaded under the ref already recorded on the order, and the completion
// event is handed to the ledger worker. Neither failure undoes the order.
func (s *orderService) PublishCompleted(ctx context.Context, customerPhone string, order *entity.Order) error {
	receipt := formatReceipt(customerPhone, order)
	if _, err := s.mediaStore.Put(ctx, order.ReceiptRef, []byte(receipt), "text/plain; charset=utf-8"); err != nil {
		s.logger.WarnContext(ctx, "failed to upload receipt",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	event := &service.OrderEvent{
		EventID:       uuid.New().String(),
		Type:          service.OrderEventCompleted,
		CustomerPhone: customerPhone,
		OrderID:       order.ID.String(),
		TotalAmount:   order.TotalAmount,
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish order completed event")
	}

	return nil
}

// AppendRefund appends a staff-signed refund sub-record to an order. The
// token doubles as the stored signature, so the adjustment stays attributable
// and verifiable after the fact.
func (s *orderService) AppendRefund(ctx context.Context, phone string, orderID uuid.UUID, amount int64, reason, staffToken string) (*entity.Refund, error) {
	claims, err := s.staffTokens.Verify(staffToken)
	if err != nil {
		return nil, domainerrors.ErrStaffTokenInvalid
	}

	refund := entity.Refund{
		ID:             uuid.New(),
		Amount:         amount,
		Reason:         reason,
		StaffID:        claims.StaffID,
		StaffSignature: staffToken,
		CreatedAt:      time.Now(),
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		customerRepo := txRepoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByPhone(ctx, phone)
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}

		order := customer.Order(orderID)
		if order == nil {
			return repository.ErrOrderNotFound
		}
		if err := order.AppendRefund(refund); err != nil {
			return err
		}

		return errors.Wrap(customerRepo.AppendRefund(ctx, phone, orderID, refund), "failed to append refund")
	})
	if err != nil {
		return nil, err
	}

	event := &service.OrderEvent{
		EventID:       uuid.New().String(),
		Type:          service.OrderEventRefunded,
		CustomerPhone: phone,
		OrderID:       orderID.String(),
		RefundAmount:  amount,
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order refunded event",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
	}

	return &refund, nil
}

func formatReceipt(customerPhone string, order *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bazaar receipt %s\n", shortID(order.ID))
	fmt.Fprintf(&b, "Customer: %s\n", customerPhone)
	fmt.Fprintf(&b, "Placed:   %s\n\n", order.PlacedAt.Format(time.RFC1123))
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %-30s %12s\n", item.Quantity, itemLabel(item), formatMoney(item.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", formatMoney(order.TotalAmount))
	if order.DiscountedAmount > 0 {
		fmt.Fprintf(&b, "Includes discounted items worth %s\n", formatMoney(order.DiscountedAmount))
	}
	fmt.Fprintf(&b, "Delivery: %s\nPayment:  %s\n", order.DeliveryType, order.PaymentMethod)

	return b.String()
}
