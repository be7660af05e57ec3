package persistence

import (
	"github.com/brandkit/backend/internal/domain/catalog"
	"github.com/brandkit/backend/internal/domain/partner"
	"github.com/brandkit/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// Models returns every persisted model. Postgres schemas come from the SQL
// migrations; sqlite databases used in development and tests are built from these.
func Models() []any {
	return []any{
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.ProductBrand{},
		&trade.Promotion{},
		&trade.Order{},
		&trade.OrderSummary{},
		&trade.OrderAdjustment{},
		&trade.OrderPromotion{},
		&partner.Customer{},
	}
}

// AutoMigrate creates or updates the tables of every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
