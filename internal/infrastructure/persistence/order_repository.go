package persistence

import (
	"context"
	"errors"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/brandkit/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAll returns every order, newest first, with the requested relations preloaded
func (r *GormOrderRepository) FindAll(ctx context.Context, relations trade.OrderRelations) ([]trade.Order, error) {
	var orders []trade.Order
	query := preloadOrderRelations(r.db.WithContext(ctx), relations).
		Order("created_at DESC, id ASC")
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID finds an order with all relations
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*trade.Order, error) {
	var order trade.Order
	err := preloadOrderRelations(r.db.WithContext(ctx), trade.AllOrderRelations()).
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Order", id)
		}
		return nil, err
	}
	return &order, nil
}

// Count counts all orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&trade.Order{}).Count(&count).Error
	return count, err
}

// Save writes the order and its relations in one transaction.
// New orders are inserted with their relations; existing ones are updated
// and their relations upserted.
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&trade.Order{}).Where("id = ?", order.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			return tx.Create(order).Error
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

func preloadOrderRelations(db *gorm.DB, relations trade.OrderRelations) *gorm.DB {
	if relations.Summary {
		db = db.Preload("Summary")
	}
	if relations.Adjustments {
		db = db.Preload("Adjustments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC, id ASC")
		})
	}
	if relations.Promotions {
		db = db.Preload("Promotions")
	}
	return db
}
