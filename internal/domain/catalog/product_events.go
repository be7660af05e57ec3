package catalog

import (
	"github.com/brandkit/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated         = "ProductCreated"
	EventTypeProductMetadataUpdated = "ProductMetadataUpdated"
	EventTypeProductBrandLinked     = "ProductBrandLinked"
	EventTypeProductBrandDismissed  = "ProductBrandDismissed"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Handle    string `json:"handle"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Title:           product.Title,
		Handle:          product.Handle,
	}
}

// ProductMetadataUpdatedEvent is published when product metadata changes
type ProductMetadataUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID string   `json:"product_id"`
	Keys      []string `json:"keys"`
}

// NewProductMetadataUpdatedEvent creates a new ProductMetadataUpdatedEvent
func NewProductMetadataUpdatedEvent(product *Product, patch map[string]interface{}) *ProductMetadataUpdatedEvent {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	return &ProductMetadataUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductMetadataUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Keys:            keys,
	}
}

// ProductBrandLinkedEvent is published when a product is linked to a brand
type ProductBrandLinkedEvent struct {
	shared.BaseDomainEvent
	ProductID string `json:"product_id"`
	BrandID   string `json:"brand_id"`
}

// NewProductBrandLinkedEvent creates a new ProductBrandLinkedEvent
func NewProductBrandLinkedEvent(productID, brandID string) *ProductBrandLinkedEvent {
	return &ProductBrandLinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductBrandLinked, AggregateTypeProduct, productID),
		ProductID:       productID,
		BrandID:         brandID,
	}
}

// ProductBrandDismissedEvent is published when a product's brand link is removed
type ProductBrandDismissedEvent struct {
	shared.BaseDomainEvent
	ProductID string `json:"product_id"`
	BrandID   string `json:"brand_id"`
}

// NewProductBrandDismissedEvent creates a new ProductBrandDismissedEvent
func NewProductBrandDismissedEvent(productID, brandID string) *ProductBrandDismissedEvent {
	return &ProductBrandDismissedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductBrandDismissed, AggregateTypeProduct, productID),
		ProductID:       productID,
		BrandID:         brandID,
	}
}
