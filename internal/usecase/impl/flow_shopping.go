package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
)

const maxLineQuantity = 999

func (s *conversationService) promptChooseCategory(ctx context.Context, t *transition) error {
	categories, err := s.catalogRepo.FindRootCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list categories")
	}
	if len(categories) == 0 {
		t.reply("The shop is being restocked right now. Please check back soon!")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	}

	var b strings.Builder
	b.WriteString("What are you shopping for?\n")
	ids := make([]string, 0, len(categories))
	for i, category := range categories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, category.Name)
		ids = append(ids, category.ID)
	}
	t.customer.Session.OptionIDs = ids
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleChooseCategory(ctx context.Context, t *transition) error {
	categoryID, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	subcategories, err := s.catalogRepo.FindSubcategories(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to list subcategories")
	}

	t.customer.Session.SelectedCategoryID = categoryID
	if len(subcategories) > 0 {
		return t.enter(ctx, entity.FlowShopping, entity.StepChooseSubcategory)
	}

	return t.enter(ctx, entity.FlowShopping, entity.StepChooseProduct)
}

func (s *conversationService) promptChooseSubcategory(ctx context.Context, t *transition) error {
	subcategories, err := s.catalogRepo.FindSubcategories(ctx, t.customer.Session.SelectedCategoryID)
	if err != nil {
		return errors.Wrap(err, "failed to list subcategories")
	}
	if len(subcategories) == 0 {
		return t.enter(ctx, entity.FlowShopping, entity.StepChooseProduct)
	}

	var b strings.Builder
	b.WriteString("Pick a section:\n")
	ids := make([]string, 0, len(subcategories))
	for i, category := range subcategories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, category.Name)
		ids = append(ids, category.ID)
	}
	t.customer.Session.OptionIDs = ids
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleChooseSubcategory(ctx context.Context, t *transition) error {
	categoryID, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	t.customer.Session.SelectedCategoryID = categoryID

	return t.enter(ctx, entity.FlowShopping, entity.StepChooseProduct)
}

func (s *conversationService) promptChooseProduct(ctx context.Context, t *transition) error {
	products, err := s.catalogRepo.FindProductsByCategory(ctx, t.customer.Session.SelectedCategoryID)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}
	if len(products) == 0 {
		t.reply("Nothing in stock here at the moment.")

		return t.enter(ctx, entity.FlowShopping, entity.StepChooseCategory)
	}

	var b strings.Builder
	b.WriteString("Here's what we have:\n")
	ids := make([]string, 0, len(products))
	for i, product := range products {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, product.Name, formatMoney(product.Price))
		ids = append(ids, product.ID)
	}
	t.customer.Session.OptionIDs = ids
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleChooseProduct(ctx context.Context, t *transition) error {
	productID, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return t.invalid(ctx, "That product just sold out. Pick another one.")
		}

		return errors.Wrap(err, "failed to load product")
	}

	t.customer.Session.SelectedProductID = product.ID
	t.customer.Session.SelectedVariant = ""
	if len(product.Variants) > 0 {
		return t.enter(ctx, entity.FlowShopping, entity.StepChooseVariant)
	}

	return t.enter(ctx, entity.FlowShopping, entity.StepEnterQuantity)
}

func (s *conversationService) promptChooseVariant(ctx context.Context, t *transition) error {
	product, err := s.catalogRepo.FindProductByID(ctx, t.customer.Session.SelectedProductID)
	if err != nil {
		return errors.Wrap(err, "failed to load product")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Which size of %s?\n", product.Name)
	labels := make([]string, 0, len(product.Variants))
	for i, variant := range product.Variants {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, variant.Label, formatMoney(variant.Price))
		labels = append(labels, variant.Label)
	}
	t.customer.Session.OptionIDs = labels
	t.reply("%s", strings.TrimRight(b.String(), "\n"))

	return nil
}

func (s *conversationService) handleChooseVariant(ctx context.Context, t *transition) error {
	label, ok := t.option()
	if !ok {
		return t.invalid(ctx, "Please reply with one of the listed numbers.")
	}

	t.customer.Session.SelectedVariant = label

	return t.enter(ctx, entity.FlowShopping, entity.StepEnterQuantity)
}

func (s *conversationService) promptEnterQuantity(ctx context.Context, t *transition) error {
	t.reply("How many would you like?")

	return nil
}

func (s *conversationService) handleEnterQuantity(ctx context.Context, t *transition) error {
	quantity, err := strconv.Atoi(t.input)
	if err != nil || quantity < 1 || quantity > maxLineQuantity {
		return t.invalid(ctx, "Please send a quantity as a plain number, e.g. 2.")
	}

	product, err := s.catalogRepo.FindProductByID(ctx, t.customer.Session.SelectedProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			t.reply("Sorry, that product is gone from the catalog.")

			return t.enter(ctx, entity.FlowShopping, entity.StepChooseCategory)
		}

		return errors.Wrap(err, "failed to load product")
	}
	if !product.Active || product.Stock < quantity {
		return t.invalid(ctx, fmt.Sprintf("Only %d of %s left in stock. Try a smaller quantity.", product.Stock, product.Name))
	}

	variant := t.customer.Session.SelectedVariant
	item := entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Variant:   variant,
		UnitPrice: product.PriceFor(variant),
		Quantity:  quantity,
	}
	t.customer.Cart.Add(item, t.now)
	t.reply("Added %d × %s to your cart.", quantity, itemLabel(item))

	return t.enter(ctx, entity.FlowCart, entity.StepCartView)
}
