package persistence

import (
	"context"
	"errors"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/brandkit/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPromotionRepository implements PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by its ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id string) (*trade.Promotion, error) {
	var promotion trade.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Promotion", id)
		}
		return nil, err
	}
	return &promotion, nil
}

// FindByCode finds a promotion by its code
func (r *GormPromotionRepository) FindByCode(ctx context.Context, code string) (*trade.Promotion, error) {
	var promotion trade.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Promotion with code: "+code+" was not found")
		}
		return nil, err
	}
	return &promotion, nil
}

// Save creates or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *trade.Promotion) error {
	if err := r.db.WithContext(ctx).Save(promotion).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "Promotion with code: "+promotion.Code+" already exists")
		}
		return err
	}
	return nil
}
