package impl

import (
	"context"
	"fmt"
	"strings"

	"bazaar/internal/domain/entity"
)

const profileHistoryLimit = 5

func (s *conversationService) promptProfileRoot(ctx context.Context, t *transition) error {
	c := t.customer
	address := c.Address
	if address == "" {
		address = "not set"
	}

	t.reply("Your profile:\nName: %s\nPhone: %s\nAddress: %s\nOrders: %d (total %s)\n\n1. Change name\n2. Change address\n3. Order history",
		c.Name, c.Phone, address, len(c.Orders), formatMoney(c.TotalSpend()))

	return nil
}

func (s *conversationService) handleProfileRoot(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		return t.enter(ctx, entity.FlowProfile, entity.StepEditName)
	case "2":
		return t.enter(ctx, entity.FlowProfile, entity.StepEditAddress)
	case "3":
		t.reply("%s", orderHistory(t.customer))

		return t.renderPrompt(ctx)
	default:
		return t.invalid(ctx, "Please reply 1, 2 or 3.")
	}
}

func orderHistory(customer *entity.Customer) string {
	if len(customer.Orders) == 0 {
		return "You haven't placed any orders yet."
	}

	var b strings.Builder
	b.WriteString("Your recent orders:\n")
	start := len(customer.Orders) - profileHistoryLimit
	if start < 0 {
		start = 0
	}
	for i := len(customer.Orders) - 1; i >= start; i-- {
		order := &customer.Orders[i]
		fmt.Fprintf(&b, "- %s · %s · %s · %s\n",
			shortID(order.ID),
			order.PlacedAt.Format("2 Jan 2006"),
			formatMoney(order.TotalAmount),
			order.Status)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *conversationService) promptEditName(ctx context.Context, t *transition) error {
	t.reply("What should we call you instead?")

	return nil
}

func (s *conversationService) handleEditName(ctx context.Context, t *transition) error {
	if len(t.input) < 2 {
		return t.invalid(ctx, "That name looks too short.")
	}

	t.customer.Name = t.input
	t.customer.UpdatedAt = t.now
	t.reply("Done, %s!", t.customer.Name)

	return t.enter(ctx, entity.FlowProfile, entity.StepProfileRoot)
}

func (s *conversationService) promptEditAddress(ctx context.Context, t *transition) error {
	t.reply("Please type your new address (street, area):")

	return nil
}

func (s *conversationService) handleEditAddress(ctx context.Context, t *transition) error {
	if len(t.input) < 5 {
		return t.invalid(ctx, "That address looks too short. Please include street and area.")
	}

	t.customer.Address = t.input
	if idx := strings.LastIndex(t.input, ","); idx >= 0 {
		t.customer.Area = strings.TrimSpace(t.input[idx+1:])
	}
	t.customer.UpdatedAt = t.now
	t.reply("Address updated.")

	return t.enter(ctx, entity.FlowProfile, entity.StepProfileRoot)
}
