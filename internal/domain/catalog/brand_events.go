package catalog

import (
	"github.com/brandkit/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBrand = "Brand"

// Event type constants
const (
	EventTypeBrandCreated = "BrandCreated"
	EventTypeBrandUpdated = "BrandUpdated"
	EventTypeBrandDeleted = "BrandDeleted"
)

// BrandCreatedEvent is published when a new brand is created
type BrandCreatedEvent struct {
	shared.BaseDomainEvent
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// NewBrandCreatedEvent creates a new BrandCreatedEvent
func NewBrandCreatedEvent(brand *Brand) *BrandCreatedEvent {
	return &BrandCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBrandCreated, AggregateTypeBrand, brand.ID),
		BrandID:         brand.ID,
		Name:            brand.Name,
	}
}

// BrandUpdatedEvent is published when a brand is renamed
type BrandUpdatedEvent struct {
	shared.BaseDomainEvent
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// NewBrandUpdatedEvent creates a new BrandUpdatedEvent
func NewBrandUpdatedEvent(brand *Brand) *BrandUpdatedEvent {
	return &BrandUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBrandUpdated, AggregateTypeBrand, brand.ID),
		BrandID:         brand.ID,
		Name:            brand.Name,
	}
}

// BrandDeletedEvent is published when a brand is deleted
type BrandDeletedEvent struct {
	shared.BaseDomainEvent
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// NewBrandDeletedEvent creates a new BrandDeletedEvent
func NewBrandDeletedEvent(brand *Brand) *BrandDeletedEvent {
	return &BrandDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBrandDeleted, AggregateTypeBrand, brand.ID),
		BrandID:         brand.ID,
		Name:            brand.Name,
	}
}
