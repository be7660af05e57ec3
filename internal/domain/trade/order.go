package trade

import (
	"time"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderIDPrefix prefixes every order identifier
const OrderIDPrefix = "order"

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusDraft          OrderStatus = "draft"
	OrderStatusArchived       OrderStatus = "archived"
	OrderStatusCanceled       OrderStatus = "canceled"
	OrderStatusRequiresAction OrderStatus = "requires_action"
)

// Keys of the order summary totals document
const (
	SummaryCurrentOrderTotal  = "current_order_total"
	SummaryOriginalOrderTotal = "original_order_total"
	SummaryPaidTotal          = "paid_total"
)

// Order is the read model of a placed order used by reporting.
// Totals arrive from the storefront in mixed representations, so the
// summary keeps them as raw JSON and callers resolve them through Amount.
type Order struct {
	shared.BaseEntity
	DisplayID     int                 `gorm:"not null;default:0"`
	Email         string              `gorm:"type:text"`
	Status        OrderStatus         `gorm:"type:text;not null;default:'pending'"`
	CurrencyCode  string              `gorm:"type:text"`
	OriginalTotal decimal.NullDecimal `gorm:"type:numeric"`
	ItemTotal     decimal.NullDecimal `gorm:"type:numeric"`
	Summary       *OrderSummary       `gorm:"foreignKey:OrderID"`
	Adjustments   []OrderAdjustment   `gorm:"foreignKey:OrderID"`
	Promotions    []OrderPromotion    `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "order"
}

// OrderSummary holds the computed totals of an order
type OrderSummary struct {
	ID        string            `gorm:"type:text;primaryKey"`
	OrderID   string            `gorm:"type:text;not null;uniqueIndex"`
	Totals    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderSummary) TableName() string {
	return "order_summary"
}

// OrderAdjustment is a discount applied to an order by a promotion
type OrderAdjustment struct {
	ID            string              `gorm:"type:text;primaryKey"`
	OrderID       string              `gorm:"type:text;not null;index"`
	PromotionID   string              `gorm:"type:text;index"`
	Code          string              `gorm:"type:text"`
	PromotionCode string              `gorm:"type:text"`
	Amount        decimal.NullDecimal `gorm:"type:numeric"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (OrderAdjustment) TableName() string {
	return "order_adjustment"
}

// OrderPromotion records that a promotion was applied to an order
type OrderPromotion struct {
	OrderID     string `gorm:"type:text;primaryKey"`
	PromotionID string `gorm:"type:text;primaryKey"`
}

// TableName returns the table name for GORM
func (OrderPromotion) TableName() string {
	return "order_promotion"
}

// NewOrderInput holds the fields used to record an order
type NewOrderInput struct {
	DisplayID     int
	Email         string
	Status        OrderStatus
	CurrencyCode  string
	OriginalTotal decimal.NullDecimal
	ItemTotal     decimal.NullDecimal
	Totals        map[string]interface{}
	CreatedAt     time.Time
}

// NewOrder creates an order read model with its summary
func NewOrder(input NewOrderInput) *Order {
	base := shared.NewBaseEntity(OrderIDPrefix)
	if !input.CreatedAt.IsZero() {
		base.CreatedAt = input.CreatedAt
		base.UpdatedAt = input.CreatedAt
	}
	status := input.Status
	if status == "" {
		status = OrderStatusPending
	}
	order := &Order{
		BaseEntity:    base,
		DisplayID:     input.DisplayID,
		Email:         input.Email,
		Status:        status,
		CurrencyCode:  input.CurrencyCode,
		OriginalTotal: input.OriginalTotal,
		ItemTotal:     input.ItemTotal,
	}
	if input.Totals != nil {
		order.Summary = &OrderSummary{
			ID:        shared.NewID("ordsum"),
			OrderID:   order.ID,
			Totals:    datatypes.JSONMap(input.Totals),
			CreatedAt: base.CreatedAt,
			UpdatedAt: base.UpdatedAt,
		}
	}
	return order
}

// AddAdjustment records a promotion discount on the order
func (o *Order) AddAdjustment(promotionID, code string, amount decimal.Decimal) *OrderAdjustment {
	adj := OrderAdjustment{
		ID:          shared.NewID("ordadj"),
		OrderID:     o.ID,
		PromotionID: promotionID,
		Code:        code,
		Amount:      decimal.NewNullDecimal(amount),
		CreatedAt:   o.CreatedAt,
	}
	o.Adjustments = append(o.Adjustments, adj)
	return &o.Adjustments[len(o.Adjustments)-1]
}

// ApplyPromotion records that a promotion was applied to the order
func (o *Order) ApplyPromotion(promotionID string) {
	o.Promotions = append(o.Promotions, OrderPromotion{OrderID: o.ID, PromotionID: promotionID})
}

func (o *Order) summaryValue(key string) interface{} {
	if o.Summary == nil || o.Summary.Totals == nil {
		return nil
	}
	return o.Summary.Totals[key]
}

// OrderValue resolves the order total through the full fallback chain:
// current order total, original order total, paid total, original total, item total.
func (o *Order) OrderValue() decimal.Decimal {
	return FirstAmount(
		o.summaryValue(SummaryCurrentOrderTotal),
		o.summaryValue(SummaryOriginalOrderTotal),
		o.summaryValue(SummaryPaidTotal),
		o.OriginalTotal,
		o.ItemTotal,
	)
}

// CurrentTotal resolves the order total through the short chain:
// current order total, original total, item total.
func (o *Order) CurrentTotal() decimal.Decimal {
	return FirstAmount(
		o.summaryValue(SummaryCurrentOrderTotal),
		o.OriginalTotal,
		o.ItemTotal,
	)
}

// DisplayLabel returns the numeric display id, or the first 8 characters of the id when unset
func (o *Order) DisplayLabel() interface{} {
	if o.DisplayID != 0 {
		return o.DisplayID
	}
	return shared.ShortID(o.ID, 8)
}

// HasPromotion reports whether the promotion appears in the order's promotion list
func (o *Order) HasPromotion(promotionID string) bool {
	for _, p := range o.Promotions {
		if p.PromotionID == promotionID {
			return true
		}
	}
	return false
}
