package report

import (
	"sort"
	"time"

	"github.com/brandkit/backend/internal/domain/trade"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RecentUsageLimit is the number of orders listed in recent activity feeds
const RecentUsageLimit = 10

// DefaultCurrencyCode is used when no order carries a currency
const DefaultCurrencyCode = "usd"

// PromotionPerformance is a read model summarising how a promotion performed
type PromotionPerformance struct {
	PromotionID       string
	TotalUsage        int
	MatchedOrders     int
	TotalDiscount     decimal.Decimal
	TotalOrderValue   decimal.Decimal
	AverageOrderValue decimal.Decimal
	CurrencyCode      string
	UsageThisMonth    int
	UsageLastMonth    int
	RecentUsage       []PromotionUsage
}

// UsageFromCounter reports whether TotalUsage fell back to the promotion's
// own counter because no orders referencing it were found
func (p PromotionPerformance) UsageFromCounter() bool {
	return p.MatchedOrders == 0 && p.TotalUsage > 0
}

// PromotionUsage is one order that redeemed a promotion
type PromotionUsage struct {
	OrderID        string
	OrderDisplayID interface{}
	CustomerEmail  string
	DiscountAmount decimal.Decimal
	OrderTotal     decimal.Decimal
	UsedAt         time.Time
}

// MonthWindow holds the calendar bounds used for monthly usage counts
type MonthWindow struct {
	ThisMonthStart time.Time
	LastMonthStart time.Time
	LastMonthEnd   time.Time
}

// NewMonthWindow computes month bounds in now's location.
// LastMonthEnd is midnight at the start of the last day of the previous month,
// so orders placed later on that day are not counted as last month.
func NewMonthWindow(now time.Time) MonthWindow {
	loc := now.Location()
	y, m, _ := now.Date()
	return MonthWindow{
		ThisMonthStart: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		LastMonthStart: time.Date(y, m-1, 1, 0, 0, 0, 0, loc),
		LastMonthEnd:   time.Date(y, m, 0, 0, 0, 0, 0, loc),
	}
}

// InThisMonth reports whether t falls in the current month
func (w MonthWindow) InThisMonth(t time.Time) bool {
	return !t.Before(w.ThisMonthStart)
}

// InLastMonth reports whether t falls in the previous month window
func (w MonthWindow) InLastMonth(t time.Time) bool {
	return !t.Before(w.LastMonthStart) && !t.After(w.LastMonthEnd)
}

// CalculatePromotionPerformance aggregates the orders that used promotion
func CalculatePromotionPerformance(promotion *trade.Promotion, orders []trade.Order, now time.Time) PromotionPerformance {
	matched := lo.Filter(orders, func(o trade.Order, _ int) bool {
		return promotion.AppliesTo(&o)
	})

	perf := PromotionPerformance{
		PromotionID:       promotion.ID,
		MatchedOrders:     len(matched),
		TotalUsage:        len(matched),
		TotalDiscount:     decimal.Zero,
		TotalOrderValue:   decimal.Zero,
		AverageOrderValue: decimal.Zero,
		CurrencyCode:      DefaultCurrencyCode,
		RecentUsage:       []PromotionUsage{},
	}
	if len(matched) == 0 {
		perf.TotalUsage = promotion.Used
	}

	perf.TotalDiscount = lo.Reduce(matched, func(sum decimal.Decimal, o trade.Order, _ int) decimal.Decimal {
		return sum.Add(discountFor(promotion, &o))
	}, decimal.Zero)

	perf.TotalOrderValue = lo.Reduce(matched, func(sum decimal.Decimal, o trade.Order, _ int) decimal.Decimal {
		return sum.Add(o.OrderValue())
	}, decimal.Zero)

	if len(matched) > 0 && perf.TotalOrderValue.IsPositive() {
		perf.AverageOrderValue = perf.TotalOrderValue.Div(decimal.NewFromInt(int64(len(matched))))
	}

	if len(matched) > 0 && matched[0].CurrencyCode != "" {
		perf.CurrencyCode = matched[0].CurrencyCode
	}

	window := NewMonthWindow(now)
	perf.UsageThisMonth = lo.CountBy(matched, func(o trade.Order) bool {
		return window.InThisMonth(o.CreatedAt)
	})
	perf.UsageLastMonth = lo.CountBy(matched, func(o trade.Order) bool {
		return window.InLastMonth(o.CreatedAt)
	})

	recent := mostRecent(matched, RecentUsageLimit)
	perf.RecentUsage = lo.Map(recent, func(o trade.Order, _ int) PromotionUsage {
		email := o.Email
		if email == "" {
			email = "Guest"
		}
		return PromotionUsage{
			OrderID:        o.ID,
			OrderDisplayID: o.DisplayLabel(),
			CustomerEmail:  email,
			DiscountAmount: discountFor(promotion, &o),
			OrderTotal:     o.CurrentTotal(),
			UsedAt:         o.CreatedAt,
		}
	})

	return perf
}

// discountFor returns the amount of the first adjustment produced by promotion
func discountFor(promotion *trade.Promotion, order *trade.Order) decimal.Decimal {
	adj, ok := lo.Find(order.Adjustments, func(a trade.OrderAdjustment) bool {
		return promotion.MatchesAdjustment(a)
	})
	if !ok {
		return decimal.Zero
	}
	amount, _ := trade.Amount(adj.Amount)
	return amount
}

// mostRecent returns up to n orders sorted by creation time, newest first.
// The input slice is left untouched.
func mostRecent(orders []trade.Order, n int) []trade.Order {
	sorted := make([]trade.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
