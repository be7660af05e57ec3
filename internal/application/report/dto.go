package report

import (
	"time"

	"github.com/brandkit/backend/internal/domain/report"
)

// PromotionPerformanceResponse is the promotion performance widget payload
type PromotionPerformanceResponse struct {
	TotalUsage        int                      `json:"totalUsage"`
	TotalDiscount     float64                  `json:"totalDiscount"`
	OrdersCount       int                      `json:"ordersCount"`
	AverageOrderValue float64                  `json:"averageOrderValue"`
	CurrencyCode      string                   `json:"currencyCode"`
	RecentUsage       []PromotionUsageResponse `json:"recentUsage"`
	UsageThisMonth    int                      `json:"usageThisMonth"`
	UsageLastMonth    int                      `json:"usageLastMonth"`
}

// PromotionUsageResponse is one order in the recent usage list
type PromotionUsageResponse struct {
	OrderID        string      `json:"orderId"`
	OrderDisplayID interface{} `json:"orderDisplayId" swaggertype:"string"`
	CustomerEmail  string      `json:"customerEmail"`
	DiscountAmount float64     `json:"discountAmount"`
	OrderTotal     float64     `json:"orderTotal"`
	UsedAt         time.Time   `json:"usedAt"`
}

// StoreStatsResponse is the reports page payload
type StoreStatsResponse struct {
	TotalOrders    int64                   `json:"totalOrders"`
	TotalRevenue   float64                 `json:"totalRevenue"`
	TotalCustomers int64                   `json:"totalCustomers"`
	RecentActivity []OrderActivityResponse `json:"recentActivity"`
}

// OrderActivityResponse is one order in the recent activity feed
type OrderActivityResponse struct {
	ID           string      `json:"id"`
	DisplayID    interface{} `json:"display_id" swaggertype:"string"`
	Email        string      `json:"email"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	CurrencyCode string      `json:"currency_code"`
}

// ToPromotionPerformanceResponse converts the read model to its API shape
func ToPromotionPerformanceResponse(p report.PromotionPerformance) PromotionPerformanceResponse {
	recent := make([]PromotionUsageResponse, len(p.RecentUsage))
	for i, u := range p.RecentUsage {
		recent[i] = PromotionUsageResponse{
			OrderID:        u.OrderID,
			OrderDisplayID: u.OrderDisplayID,
			CustomerEmail:  u.CustomerEmail,
			DiscountAmount: u.DiscountAmount.InexactFloat64(),
			OrderTotal:     u.OrderTotal.InexactFloat64(),
			UsedAt:         u.UsedAt,
		}
	}
	return PromotionPerformanceResponse{
		TotalUsage:        p.TotalUsage,
		TotalDiscount:     p.TotalDiscount.InexactFloat64(),
		OrdersCount:       p.TotalUsage,
		AverageOrderValue: p.AverageOrderValue.InexactFloat64(),
		CurrencyCode:      p.CurrencyCode,
		RecentUsage:       recent,
		UsageThisMonth:    p.UsageThisMonth,
		UsageLastMonth:    p.UsageLastMonth,
	}
}

// ToStoreStatsResponse converts the read model to its API shape
func ToStoreStatsResponse(s report.StoreStats) StoreStatsResponse {
	activity := make([]OrderActivityResponse, len(s.RecentActivity))
	for i, a := range s.RecentActivity {
		activity[i] = OrderActivityResponse{
			ID:           a.ID,
			DisplayID:    a.DisplayID,
			Email:        a.Email,
			Total:        a.Total.InexactFloat64(),
			Status:       a.Status,
			CreatedAt:    a.CreatedAt,
			CurrencyCode: a.CurrencyCode,
		}
	}
	return StoreStatsResponse{
		TotalOrders:    s.TotalOrders,
		TotalRevenue:   s.TotalRevenue.InexactFloat64(),
		TotalCustomers: s.TotalCustomers,
		RecentActivity: activity,
	}
}
