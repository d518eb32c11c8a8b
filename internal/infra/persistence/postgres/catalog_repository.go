package postgres

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// The engine only reads the catalog; management happens elsewhere.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProductByID retrieves a single product.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM)
}

// FindProductsByCategory lists active products of a category, in sort order.
func (repo *catalogRepository) FindProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ? AND active", categoryID).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// FindRootCategories lists active top-level categories, in sort order.
func (repo *catalogRepository) FindRootCategories(ctx context.Context) ([]*entity.Category, error) {
	return repo.findCategories(ctx, "")
}

// FindSubcategories lists active children of a category, in sort order.
func (repo *catalogRepository) FindSubcategories(ctx context.Context, parentID string) ([]*entity.Category, error) {
	return repo.findCategories(ctx, parentID)
}

func (repo *catalogRepository) findCategories(ctx context.Context, parentID string) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ? AND active", parentID).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindCategoryByID retrieves a single category.
func (repo *catalogRepository) FindCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindBatchDiscountsForCategory lists batch discounts allocated to a
// discount category, including inactive ones; callers filter by Open.
func (repo *catalogRepository) FindBatchDiscountsForCategory(ctx context.Context, category entity.DiscountCategory) ([]*entity.BatchDiscount, error) {
	var batchModels []*model.BatchDiscountModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("version DESC").
		Find(&batchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find batch discounts")
	}

	batches := make([]*entity.BatchDiscount, 0, len(batchModels))
	for _, batchM := range batchModels {
		batch, err := toBatchDiscountDomain(batchM)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

func toProductDomain(productM *model.ProductModel) (*entity.Product, error) {
	product := &entity.Product{
		ID:          productM.ID,
		CategoryID:  productM.CategoryID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Stock:       productM.Stock,
		Active:      productM.Active,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}

	if len(productM.Variants) > 0 {
		if err := json.Unmarshal(productM.Variants, &product.Variants); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal product variants")
		}
	}

	return product, nil
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        categoryM.ID,
		ParentID:  categoryM.ParentID,
		Name:      categoryM.Name,
		SortOrder: categoryM.SortOrder,
		Active:    categoryM.Active,
	}
}

func toBatchDiscountDomain(batchM *model.BatchDiscountModel) (*entity.BatchDiscount, error) {
	batch := &entity.BatchDiscount{
		ID:            batchM.ID,
		Name:          batchM.Name,
		Version:       batchM.Version,
		Category:      entity.DiscountCategory(batchM.Category),
		DiscountPrice: batchM.DiscountPrice,
		Active:        batchM.Active,
		StartsAt:      batchM.StartsAt,
		EndsAt:        batchM.EndsAt,
	}

	if len(batchM.ProductIDs) > 0 {
		if err := json.Unmarshal(batchM.ProductIDs, &batch.ProductIDs); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal batch product ids")
		}
	}

	return batch, nil
}
