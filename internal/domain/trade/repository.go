package trade

import (
	"context"
)

// OrderRelations selects which order relations are loaded
type OrderRelations struct {
	Summary     bool
	Adjustments bool
	Promotions  bool
}

// AllOrderRelations loads every relation of an order
func AllOrderRelations() OrderRelations {
	return OrderRelations{Summary: true, Adjustments: true, Promotions: true}
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindAll returns every order with the requested relations
	FindAll(ctx context.Context, relations OrderRelations) ([]Order, error)

	// FindByID finds an order with all relations
	FindByID(ctx context.Context, id string) (*Order, error)

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// Save creates or updates an order together with its summary, adjustments and promotions
	Save(ctx context.Context, order *Order) error
}

// PromotionRepository defines the interface for promotion persistence
type PromotionRepository interface {
	// FindByID finds a promotion by its ID
	FindByID(ctx context.Context, id string) (*Promotion, error)

	// FindByCode finds a promotion by its code
	FindByCode(ctx context.Context, code string) (*Promotion, error)

	// Save creates or updates a promotion
	Save(ctx context.Context, promotion *Promotion) error
}
