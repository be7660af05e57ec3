package catalog

import (
	"context"

	"github.com/brandkit/backend/internal/domain/shared"
)

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	// FindByID finds a brand by its ID, ignoring soft-deleted brands
	FindByID(ctx context.Context, id string) (*Brand, error)

	// FindByIDs finds all brands with the given IDs; missing IDs are skipped
	FindByIDs(ctx context.Context, ids []string) ([]Brand, error)

	// FindAll finds all brands matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Brand, error)

	// Count counts brands matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a brand
	Save(ctx context.Context, brand *Brand) error

	// Delete soft-deletes a brand
	Delete(ctx context.Context, id string) error
}
