package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bazaar/internal/domain/entity"
)

func (s *conversationService) promptCartView(ctx context.Context, t *transition) error {
	cart := &t.customer.Cart
	if cart.IsEmpty() {
		t.reply("Your cart is empty.")

		return t.enter(ctx, entity.FlowShopping, entity.StepChooseCategory)
	}

	var b strings.Builder
	b.WriteString("Your cart:\n")
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "- %d × %s — %s\n", item.Quantity, itemLabel(item), formatMoney(item.Subtotal()))
	}
	fmt.Fprintf(&b, "Total: %s\n\n", formatMoney(cart.Total()))
	b.WriteString("1. Checkout\n2. Remove an item\n3. Keep shopping\n4. Empty the cart")
	t.customer.Session.OptionIDs = nil
	t.reply("%s", b.String())

	return nil
}

func (s *conversationService) handleCartView(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		if t.customer.Cart.IsEmpty() {
			return t.invalid(ctx, "Your cart is empty. Add something first!")
		}

		return t.enter(ctx, entity.FlowCheckout, entity.StepChooseDelivery)
	case "2":
		if t.customer.Cart.IsEmpty() {
			return t.invalid(ctx, "Your cart is already empty.")
		}

		return t.enter(ctx, entity.FlowCart, entity.StepRemoveItem)
	case "3":
		return t.enter(ctx, entity.FlowShopping, entity.StepChooseCategory)
	case "4":
		t.customer.Cart.Clear(t.now)
		t.reply("Cart emptied.")

		return t.enter(ctx, entity.FlowMenu, entity.StepRoot)
	default:
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}
}

func (s *conversationService) promptRemoveItem(ctx context.Context, t *transition) error {
	cart := &t.customer.Cart
	if cart.IsEmpty() {
		return t.enter(ctx, entity.FlowCart, entity.StepCartView)
	}

	var b strings.Builder
	b.WriteString("Which item should I remove?\n")
	indexes := make([]string, 0, len(cart.Items))
	for i, item := range cart.Items {
		fmt.Fprintf(&b, "%d. %d × %s\n", i+1, item.Quantity, itemLabel(item))
		indexes = append(indexes, strconv.Itoa(i))
	}
	t.customer.Session.OptionIDs = indexes
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleRemoveItem(ctx context.Context, t *transition) error {
	raw, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 || index >= len(t.customer.Cart.Items) {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	removed := t.customer.Cart.Items[index]
	t.customer.Cart.RemoveAt(index, t.now)
	t.reply("Removed %s.", itemLabel(removed))

	return t.enter(ctx, entity.FlowCart, entity.StepCartView)
}
