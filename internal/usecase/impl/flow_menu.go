package impl

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
)

const menuText = `Main menu — reply with a number:
1. Shop products
2. View cart
3. Checkout
4. Discounts
5. Referral program
6. Support
7. My profile

Reply 0 anytime to come back here.`

func (s *conversationService) promptMenu(ctx context.Context, t *transition) error {
	t.reply("%s", menuText)

	return nil
}

func (s *conversationService) handleMenu(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		return t.enter(ctx, entity.FlowShopping, entity.StepChooseCategory)
	case "2":
		return t.enter(ctx, entity.FlowCart, entity.StepCartView)
	case "3":
		if t.customer.Cart.IsEmpty() {
			return t.invalid(ctx, "Your cart is empty. Add something first!")
		}

		return t.enter(ctx, entity.FlowCheckout, entity.StepChooseDelivery)
	case "4":
		return s.enterDiscountFlow(ctx, t)
	case "5":
		return t.enter(ctx, entity.FlowReferral, entity.StepReferralRoot)
	case "6":
		return t.enter(ctx, entity.FlowSupport, entity.StepDescribeIssue)
	case "7":
		return t.enter(ctx, entity.FlowProfile, entity.StepProfileRoot)
	default:
		return t.invalid(ctx, "Please reply with a number from the menu.")
	}
}

// enterDiscountFlow refreshes the customer's eligibility before showing
// offers; the refreshed cache is committed with the rest of the transition.
// When no active category has an open offer the customer stays at the menu.
func (s *conversationService) enterDiscountFlow(ctx context.Context, t *transition) error {
	if _, err := s.eligibility.Refresh(ctx, t.customer, t.now); err != nil {
		return errors.Wrap(err, "failed to refresh eligibility")
	}

	available, err := s.discountCategoriesWithOffers(ctx, t)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		return t.invalid(ctx, "No discounts are available for you right now. Check back soon!")
	}

	return t.enter(ctx, entity.FlowDiscount, entity.StepDiscountCategory)
}
