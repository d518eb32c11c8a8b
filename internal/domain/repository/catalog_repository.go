package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is returned when a product id resolves to nothing,
// which can legitimately happen mid-conversation if staff delete a product.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category id resolves to nothing.
var ErrCategoryNotFound = errors.New("category not found")

// CatalogRepository is read-only catalog access from the engine's
// perspective. Catalog management itself is outside this core.
type CatalogRepository interface {
	// FindProductByID retrieves a single product.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// FindProductsByCategory lists active products of a category, in sort order.
	FindProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// FindRootCategories lists active top-level categories, in sort order.
	FindRootCategories(ctx context.Context) ([]*entity.Category, error)

	// FindSubcategories lists active children of a category, in sort order.
	FindSubcategories(ctx context.Context, parentID string) ([]*entity.Category, error)

	// FindCategoryByID retrieves a single category.
	FindCategoryByID(ctx context.Context, id string) (*entity.Category, error)

	// FindBatchDiscountsForCategory lists batch discounts allocated to a
	// discount category, including inactive ones; callers filter by Open.
	FindBatchDiscountsForCategory(ctx context.Context, category entity.DiscountCategory) ([]*entity.BatchDiscount, error)
}
