package report

import (
	"time"

	"github.com/brandkit/backend/internal/domain/trade"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// StoreStats is the read model behind the admin reports dashboard
type StoreStats struct {
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	TotalCustomers int64
	RecentActivity []OrderActivity
}

// OrderActivity is one entry of the recent orders feed
type OrderActivity struct {
	ID           string
	DisplayID    interface{}
	Email        string
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
	CurrencyCode string
}

// CalculateStoreStats aggregates revenue from completed orders and builds the activity feed
func CalculateStoreStats(orders []trade.Order, customerCount int64) StoreStats {
	revenue := lo.Reduce(orders, func(sum decimal.Decimal, o trade.Order, _ int) decimal.Decimal {
		if o.Status != trade.OrderStatusCompleted {
			return sum
		}
		return sum.Add(o.OrderValue())
	}, decimal.Zero)

	activity := lo.Map(mostRecent(orders, RecentUsageLimit), func(o trade.Order, _ int) OrderActivity {
		return OrderActivity{
			ID:           o.ID,
			DisplayID:    o.DisplayLabel(),
			Email:        lo.Ternary(o.Email != "", o.Email, "N/A"),
			Total:        o.OrderValue(),
			Status:       lo.Ternary(o.Status != "", string(o.Status), string(trade.OrderStatusPending)),
			CreatedAt:    o.CreatedAt,
			CurrencyCode: lo.Ternary(o.CurrencyCode != "", o.CurrencyCode, DefaultCurrencyCode),
		}
	})

	return StoreStats{
		TotalOrders:    int64(len(orders)),
		TotalRevenue:   revenue,
		TotalCustomers: customerCount,
		RecentActivity: activity,
	}
}
