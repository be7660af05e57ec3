package persistence

import (
	"context"
	"errors"

	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Product", id)
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds all products with the given IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Product, error) {
	var products []catalog.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter).
		Order(orderClause(filter.OrderBy, filter.OrderDir, ProductSortFields)).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter).Count(&count).Error
	return count, err
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return translateProductError(err, product.Handle)
	}
	return nil
}

// SaveBatch creates products in a single insert
func (r *GormProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(products).Error; err != nil {
		return translateProductError(err, "")
	}
	return nil
}

// DeleteByIDs permanently removes the given products so their handles can be reused
func (r *GormProductRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&catalog.Product{}).Error
}

func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("LOWER(title) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(handle) LIKE ? ESCAPE '"+likeEscape+"'", like, like)
	}
	if brandID, ok := filter.Filters["brand_id"].(string); ok && brandID != "" {
		query = query.Where("id IN (?)",
			r.db.Model(&catalog.ProductBrand{}).Select("product_id").Where("brand_id = ?", brandID))
	}
	return query
}

func translateProductError(err error, handle string) error {
	if !isUniqueViolation(err) {
		return err
	}
	if handle != "" {
		return shared.NewDomainError("ALREADY_EXISTS", "Product with handle: "+handle+" already exists")
	}
	return shared.NewDomainError("ALREADY_EXISTS", "Product with the same handle already exists")
}
