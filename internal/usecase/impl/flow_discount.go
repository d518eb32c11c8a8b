package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
)

// categoryLabels are the customer-facing names of the discount categories.
var categoryLabels = map[entity.DiscountCategory]string{
	entity.CategoryEveryone:            "Deals for everyone",
	entity.CategoryForemen:             "Foremen specials",
	entity.CategoryForemenCommission:   "Foremen partner offers",
	entity.CategoryReferral3Days:       "Referral reward days",
	entity.CategoryNewCustomerReferred: "Welcome offer (invited)",
	entity.CategoryNewCustomer:         "Welcome offer",
	entity.CategoryShopping30M:         "Big purchase bonus",
	entity.CategoryShopping100M60Days:  "Loyal shopper offers",
}

func categoryLabel(category entity.DiscountCategory) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}

	return string(category)
}

// discountCategoriesWithOffers lists the categories the customer is actively
// eligible for that also have at least one open batch discount, in the
// canonical category order.
func (s *conversationService) discountCategoriesWithOffers(ctx context.Context, t *transition) ([]entity.DiscountCategory, error) {
	var available []entity.DiscountCategory
	for _, category := range entity.AllDiscountCategories {
		cached := t.customer.Eligibility.Category(category)
		if cached == nil || !cached.IsActive {
			continue
		}

		batches, err := s.catalogRepo.FindBatchDiscountsForCategory(ctx, category)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list batch discounts")
		}
		for _, batch := range batches {
			if batch.Open(t.now) && len(batch.ProductIDs) > 0 {
				available = append(available, category)

				break
			}
		}
	}

	return available, nil
}

func (s *conversationService) promptDiscountCategory(ctx context.Context, t *transition) error {
	available, err := s.discountCategoriesWithOffers(ctx, t)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		t.reply("No discounts are available for you right now.")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	}

	var b strings.Builder
	b.WriteString("Your discounts:\n")
	ids := make([]string, 0, len(available))
	for i, category := range available {
		fmt.Fprintf(&b, "%d. %s\n", i+1, categoryLabel(category))
		ids = append(ids, string(category))
	}
	t.customer.Session.OptionIDs = ids
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleDiscountCategory(ctx context.Context, t *transition) error {
	raw, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	category := entity.DiscountCategory(raw)
	cached := t.customer.Eligibility.Category(category)
	if cached == nil || !cached.IsActive {
		return t.invalid(ctx, "That offer is no longer available to you.")
	}

	t.customer.Session.ActiveOffer = category

	return t.enter(ctx, entity.FlowDiscount, entity.StepDiscountProduct)
}

func (s *conversationService) promptDiscountProduct(ctx context.Context, t *transition) error {
	offers, err := s.openOffers(ctx, t.customer.Session.ActiveOffer, t.now)
	if err != nil {
		return err
	}
	if len(offers) == 0 {
		t.reply("That offer just closed, sorry!")

		return t.enter(ctx, entity.FlowDiscount, entity.StepDiscountCategory)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", categoryLabel(t.customer.Session.ActiveOffer))
	ids := make([]string, 0, len(offers))
	for i, offer := range offers {
		fmt.Fprintf(&b, "%d. %s — %s (was %s)\n",
			i+1, offer.product.Name, formatMoney(offer.price), formatMoney(offer.product.Price))
		ids = append(ids, offer.product.ID)
	}
	t.customer.Session.OptionIDs = ids
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleDiscountProduct(ctx context.Context, t *transition) error {
	productID, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	t.customer.Session.SelectedProductID = productID

	return t.enter(ctx, entity.FlowDiscount, entity.StepDiscountQuantity)
}

func (s *conversationService) promptDiscountQuantity(ctx context.Context, t *transition) error {
	t.reply("How many would you like?")

	return nil
}

func (s *conversationService) handleDiscountQuantity(ctx context.Context, t *transition) error {
	quantity, err := strconv.Atoi(t.input)
	if err != nil || quantity < 1 || quantity > maxLineQuantity {
		return t.invalid(ctx, "Please send a quantity as a plain number, e.g. 2.")
	}

	// The offer price is resolved again here; an offer that closed between
	// selection and quantity entry must not leak into the cart.
	offers, err := s.openOffers(ctx, t.customer.Session.ActiveOffer, t.now)
	if err != nil {
		return err
	}

	var selected *discountOffer
	for i := range offers {
		if offers[i].product.ID == t.customer.Session.SelectedProductID {
			selected = &offers[i]

			break
		}
	}
	if selected == nil {
		t.reply("That offer just closed, sorry!")

		return t.enter(ctx, entity.FlowDiscount, entity.StepDiscountCategory)
	}
	if selected.product.Stock < quantity {
		return t.invalid(ctx, fmt.Sprintf("Only %d of %s left in stock. Try a smaller quantity.",
			selected.product.Stock, selected.product.Name))
	}

	item := entity.CartItem{
		ProductID:  selected.product.ID,
		Name:       selected.product.Name,
		UnitPrice:  selected.price,
		Quantity:   quantity,
		Discounted: true,
	}
	t.customer.Cart.Add(item, t.now)
	t.reply("Added %d × %s at the discounted price.", quantity, selected.product.Name)

	return t.enter(ctx, entity.FlowCart, entity.StepCartView)
}

// discountOffer pairs a purchasable product with its effective offer price.
type discountOffer struct {
	product *entity.Product
	price   int64
}

// openOffers resolves the currently open batch discounts of a category into
// per-product offers. When several open batches cover the same product, the
// lowest price wins. Inactive and out-of-stock products are dropped.
func (s *conversationService) openOffers(ctx context.Context, category entity.DiscountCategory, now time.Time) ([]discountOffer, error) {
	batches, err := s.catalogRepo.FindBatchDiscountsForCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list batch discounts")
	}

	var (
		offers []discountOffer
		byID   = map[string]int{}
	)
	for _, batch := range batches {
		if !batch.Open(now) {
			continue
		}
		for _, productID := range batch.ProductIDs {
			if i, seen := byID[productID]; seen {
				if batch.DiscountPrice < offers[i].price {
					offers[i].price = batch.DiscountPrice
				}

				continue
			}

			product, err := s.catalogRepo.FindProductByID(ctx, productID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					continue
				}

				return nil, errors.Wrap(err, "failed to load product")
			}
			if !product.Active || product.Stock < 1 {
				continue
			}

			byID[productID] = len(offers)
			offers = append(offers, discountOffer{product: product, price: batch.DiscountPrice})
		}
	}

	return offers, nil
}
