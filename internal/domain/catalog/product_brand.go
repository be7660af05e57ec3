package catalog

import (
	"context"
	"time"

	"github.com/brandkit/backend/internal/domain/shared"
)

// ProductBrandIDPrefix prefixes every product-brand link identifier
const ProductBrandIDPrefix = "prodbrand"

// ProductBrand links one product to one brand.
// product_id is unique, so a product carries at most one brand at a time.
type ProductBrand struct {
	ID        string    `gorm:"type:text;primaryKey"`
	ProductID string    `gorm:"type:text;not null;uniqueIndex"`
	BrandID   string    `gorm:"type:text;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductBrand) TableName() string {
	return "product_brand"
}

// NewProductBrand creates a link between a product and a brand
func NewProductBrand(productID, brandID string) (*ProductBrand, error) {
	if productID == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if brandID == "" {
		return nil, shared.NewDomainError("INVALID_BRAND", "Brand ID is required")
	}
	now := time.Now()
	return &ProductBrand{
		ID:        shared.NewID(ProductBrandIDPrefix),
		ProductID: productID,
		BrandID:   brandID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ProductBrandRepository persists product-brand links
type ProductBrandRepository interface {
	// Create inserts links. A product that already has a brand yields ErrAlreadyExists.
	Create(ctx context.Context, links ...*ProductBrand) error

	// Dismiss removes the link between productID and brandID and reports how many rows went away
	Dismiss(ctx context.Context, productID, brandID string) (int64, error)

	// DismissByProduct removes whatever link the product has
	DismissByProduct(ctx context.Context, productID string) (int64, error)

	// DismissByBrand removes every link pointing at the brand
	DismissByBrand(ctx context.Context, brandID string) (int64, error)

	// FindByProductIDs returns the links of the given products
	FindByProductIDs(ctx context.Context, productIDs []string) ([]ProductBrand, error)

	// FindByBrandIDs returns the links of the given brands
	FindByBrandIDs(ctx context.Context, brandIDs []string) ([]ProductBrand, error)
}
