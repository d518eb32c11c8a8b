package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	deliveryExpress  = "express"
	deliveryStandard = "standard"
	deliveryPickup   = "pickup"

	paymentCashOnDelivery = "cash_on_delivery"
	paymentBankTransfer   = "bank_transfer"
)

func (s *conversationService) promptChooseDelivery(ctx context.Context, t *transition) error {
	if t.customer.Cart.IsEmpty() {
		t.reply("Your cart is empty, nothing to check out.")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	}

	t.reply("How should we get this to you?\n1. Express (same day)\n2. Standard delivery\n3. Pickup at the store")

	return nil
}

func (s *conversationService) handleChooseDelivery(ctx context.Context, t *transition) error {
	var delivery string
	switch t.input {
	case "1":
		delivery = deliveryExpress
	case "2":
		delivery = deliveryStandard
	case "3":
		delivery = deliveryPickup
	default:
		return t.invalid(ctx, "Please reply 1, 2 or 3.")
	}

	t.customer.Session.SelectedDelivery = delivery
	t.customer.Cart.DeliveryType = delivery
	t.customer.Cart.UpdatedAt = t.now

	// Pickup needs no address.
	if delivery == deliveryPickup {
		return t.enter(ctx, entity.FlowCheckout, entity.StepChoosePayment)
	}
	if t.customer.Address == "" {
		return t.enter(ctx, entity.FlowCheckout, entity.StepEnterAddress)
	}

	return t.enter(ctx, entity.FlowCheckout, entity.StepChooseAddress)
}

func (s *conversationService) promptChooseAddress(ctx context.Context, t *transition) error {
	t.reply("Where should we deliver?\n1. Saved address: %s\n2. A new address", t.customer.Address)

	return nil
}

func (s *conversationService) handleChooseAddress(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		return t.enter(ctx, entity.FlowCheckout, entity.StepChoosePayment)
	case "2":
		return t.enter(ctx, entity.FlowCheckout, entity.StepEnterAddress)
	default:
		return t.invalid(ctx, "Please reply 1 or 2.")
	}
}

func (s *conversationService) promptEnterAddress(ctx context.Context, t *transition) error {
	t.reply("Please type your delivery address (street, area):")

	return nil
}

func (s *conversationService) handleEnterAddress(ctx context.Context, t *transition) error {
	if len(t.input) < 5 {
		return t.invalid(ctx, "That address looks too short. Please include street and area.")
	}

	t.customer.Address = t.input
	if idx := strings.LastIndex(t.input, ","); idx >= 0 {
		t.customer.Area = strings.TrimSpace(t.input[idx+1:])
	}
	t.customer.UpdatedAt = t.now

	return t.enter(ctx, entity.FlowCheckout, entity.StepChoosePayment)
}

func (s *conversationService) promptChoosePayment(ctx context.Context, t *transition) error {
	t.reply("How would you like to pay?\n1. Cash on delivery\n2. Bank transfer")

	return nil
}

func (s *conversationService) handleChoosePayment(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		t.customer.Session.SelectedPayment = paymentCashOnDelivery
	case "2":
		t.customer.Session.SelectedPayment = paymentBankTransfer
	default:
		return t.invalid(ctx, "Please reply 1 or 2.")
	}

	return t.enter(ctx, entity.FlowCheckout, entity.StepConfirmOrder)
}

// promptConfirmOrder assigns the pending order id the first time the
// confirmation step is entered. Re-entering the step (price drift, replayed
// confirmation) reuses it, which is what makes order placement idempotent.
func (s *conversationService) promptConfirmOrder(ctx context.Context, t *transition) error {
	session := &t.customer.Session
	if session.PendingOrderID == "" {
		session.PendingOrderID = uuid.NewString()
	}

	cart := &t.customer.Cart
	var b strings.Builder
	b.WriteString("Please confirm your order:\n")
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "- %d × %s — %s\n", item.Quantity, itemLabel(item), formatMoney(item.Subtotal()))
	}
	fmt.Fprintf(&b, "Total: %s\n", formatMoney(cart.Total()))
	if discounted := cart.DiscountedTotal(); discounted > 0 {
		fmt.Fprintf(&b, "Includes discounted items worth %s\n", formatMoney(discounted))
	}
	fmt.Fprintf(&b, "Delivery: %s\n", cart.DeliveryType)
	if cart.DeliveryType != deliveryPickup {
		fmt.Fprintf(&b, "Address: %s\n", t.customer.Address)
	}
	fmt.Fprintf(&b, "Payment: %s\n\n", session.SelectedPayment)
	b.WriteString("1. Confirm\n2. Cancel")
	t.reply("%s", b.String())

	return nil
}

func (s *conversationService) handleConfirmOrder(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		return s.placeOrder(ctx, t)
	case "2":
		t.reply("Checkout cancelled. Your cart is untouched.")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	default:
		return t.invalid(ctx, "Please reply 1 to confirm or 2 to cancel.")
	}
}

func (s *conversationService) placeOrder(ctx context.Context, t *transition) error {
	orderID, err := uuid.Parse(t.customer.Session.PendingOrderID)
	if err != nil {
		orderID = uuid.New()
		t.customer.Session.PendingOrderID = orderID.String()
	}

	order, err := s.orders.PlaceOrder(ctx, t.customer, orderID)
	switch {
	case err == nil:
	case errors.Is(err, ErrPriceChanged):
		t.reply("Some prices changed while you were deciding. Here is the updated order:")

		return t.renderPrompt(ctx)
	case errors.Is(err, ErrItemUnavailable), errors.Is(err, ErrInsufficientStock):
		t.reply("We can't fulfil part of your cart anymore: %s. Please adjust it.", errorDetail(err))

		return t.enter(ctx, entity.FlowCart, entity.StepCartView)
	case errors.Is(err, ErrEmptyCart):
		t.reply("Your cart is empty, nothing to check out.")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	default:
		return errors.Wrap(err, "failed to place order")
	}

	placed := *order
	phone := t.customer.Phone
	t.postCommit = append(t.postCommit, func(ctx context.Context) {
		if err := s.orders.PublishCompleted(ctx, phone, &placed); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish order completion", slog.Any("error", err))
		}
	})

	t.reply("Order %s placed! Total %s. We'll confirm it shortly.", shortID(order.ID), formatMoney(order.TotalAmount))

	return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
}

// errorDetail extracts the human-readable wrap message in front of a
// sentinel, falling back to the whole error text.
func errorDetail(err error) string {
	msg := err.Error()
	for _, sentinel := range []string{ErrItemUnavailable.Error(), ErrInsufficientStock.Error()} {
		msg = strings.TrimSuffix(msg, ": "+sentinel)
	}

	return msg
}
