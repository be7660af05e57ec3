package persistence

import (
	"context"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductBrandRepository stores product-brand links in the product_brand table
type GormProductBrandRepository struct {
	db *gorm.DB
}

// NewGormProductBrandRepository creates a new GormProductBrandRepository
func NewGormProductBrandRepository(db *gorm.DB) *GormProductBrandRepository {
	return &GormProductBrandRepository{db: db}
}

// Create inserts links. A product that already has a link yields ALREADY_EXISTS.
func (r *GormProductBrandRepository) Create(ctx context.Context, links ...*catalog.ProductBrand) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(links).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "Product is already linked to a brand")
		}
		return err
	}
	return nil
}

// Dismiss deletes the link between productID and brandID
func (r *GormProductBrandRepository) Dismiss(ctx context.Context, productID, brandID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("product_id = ? AND brand_id = ?", productID, brandID).
		Delete(&catalog.ProductBrand{})
	return result.RowsAffected, result.Error
}

// DismissByProduct deletes whatever link the product has
func (r *GormProductBrandRepository) DismissByProduct(ctx context.Context, productID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&catalog.ProductBrand{})
	return result.RowsAffected, result.Error
}

// DismissByBrand deletes every link pointing at the brand
func (r *GormProductBrandRepository) DismissByBrand(ctx context.Context, brandID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&catalog.ProductBrand{})
	return result.RowsAffected, result.Error
}

// FindByProductIDs returns the links of the given products
func (r *GormProductBrandRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]catalog.ProductBrand, error) {
	var links []catalog.ProductBrand
	if len(productIDs) == 0 {
		return links, nil
	}
	err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&links).Error
	return links, err
}

// FindByBrandIDs returns the links of the given brands, oldest first
func (r *GormProductBrandRepository) FindByBrandIDs(ctx context.Context, brandIDs []string) ([]catalog.ProductBrand, error) {
	var links []catalog.ProductBrand
	if len(brandIDs) == 0 {
		return links, nil
	}
	err := r.db.WithContext(ctx).
		Where("brand_id IN ?", brandIDs).
		Order("created_at ASC, id ASC").
		Find(&links).Error
	return links, err
}
