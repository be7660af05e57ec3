package persistence

import (
	"context"
	"errors"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByID finds a brand by its ID
func (r *GormBrandRepository) FindByID(ctx context.Context, id string) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Brand", id)
		}
		return nil, err
	}
	return &brand, nil
}

// FindByIDs finds all brands with the given IDs
func (r *GormBrandRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	if len(ids) == 0 {
		return brands, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// FindAll finds all brands matching the filter
func (r *GormBrandRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Brand{}), filter).
		Order(orderClause(filter.OrderBy, filter.OrderDir, BrandSortFields)).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Count counts brands matching the filter
func (r *GormBrandRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Brand{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// Delete soft-deletes a brand
func (r *GormBrandRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Brand{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Brand", id)
	}
	return nil
}

func (r *GormBrandRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '"+likeEscape+"'", containsPattern(filter.Search))
	}
	return query
}
