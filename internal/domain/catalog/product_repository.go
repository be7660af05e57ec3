package catalog

import (
	"context"

	"github.com/brandkit/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByIDs finds all products with the given IDs; missing IDs are skipped
	FindByIDs(ctx context.Context, ids []string) ([]Product, error)

	// FindAll finds all products matching the filter.
	// Filters["brand_id"] restricts the result to products linked to that brand.
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates products in one statement
	SaveBatch(ctx context.Context, products []*Product) error

	// DeleteByIDs permanently removes the given products
	DeleteByIDs(ctx context.Context, ids []string) error
}
