package trade

import (
	"strings"

	"github.com/brandkit/backend/internal/domain/shared"
)

// PromotionIDPrefix prefixes every promotion identifier
const PromotionIDPrefix = "promo"

// PromotionStatus represents whether a promotion can be applied
type PromotionStatus string

const (
	PromotionStatusDraft    PromotionStatus = "draft"
	PromotionStatusActive   PromotionStatus = "active"
	PromotionStatusInactive PromotionStatus = "inactive"
)

// PromotionType distinguishes plain discounts from buy-get offers
type PromotionType string

const (
	PromotionTypeStandard PromotionType = "standard"
	PromotionTypeBuyGet   PromotionType = "buyget"
)

// Promotion is a discount code. Used counts redemptions as tracked at checkout.
type Promotion struct {
	shared.BaseEntity
	Code        string          `gorm:"type:text;not null;uniqueIndex"`
	Type        PromotionType   `gorm:"type:text;not null;default:'standard'"`
	Status      PromotionStatus `gorm:"type:text;not null;default:'draft'"`
	IsAutomatic bool            `gorm:"not null;default:false"`
	Used        int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotion"
}

// NewPromotion creates a draft standard promotion
func NewPromotion(code string) (*Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Promotion code cannot be empty")
	}
	return &Promotion{
		BaseEntity: shared.NewBaseEntity(PromotionIDPrefix),
		Code:       code,
		Type:       PromotionTypeStandard,
		Status:     PromotionStatusDraft,
	}, nil
}

// Activate makes the promotion applicable at checkout
func (p *Promotion) Activate() {
	p.Status = PromotionStatusActive
}

// RecordUsage increments the redemption counter
func (p *Promotion) RecordUsage() {
	p.Used++
}

// MatchesAdjustment reports whether adj was produced by this promotion,
// by id, by code, or by the promotion code copied onto the adjustment
func (p *Promotion) MatchesAdjustment(adj OrderAdjustment) bool {
	if adj.PromotionID != "" && adj.PromotionID == p.ID {
		return true
	}
	if p.Code == "" {
		return false
	}
	return adj.Code == p.Code || adj.PromotionCode == p.Code
}

// AppliesTo reports whether the order used this promotion, through an
// adjustment matched by id or code, or through the order's promotion list
func (p *Promotion) AppliesTo(order *Order) bool {
	for _, adj := range order.Adjustments {
		if (adj.PromotionID != "" && adj.PromotionID == p.ID) || (p.Code != "" && adj.Code == p.Code) {
			return true
		}
	}
	return order.HasPromotion(p.ID)
}
