package catalog

import (
	"time"

	"github.com/brandkit/backend/internal/domain/catalog"
)

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255" example:"Acme"`
}

// UpdateBrandRequest represents a request to update a brand
type UpdateBrandRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255" example:"Acme Corp"`
}

// BrandListFilter holds query options for listing brands
type BrandListFilter struct {
	Q      string `form:"q"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Order  string `form:"order" binding:"omitempty,oneof=name -name created_at -created_at updated_at -updated_at"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt *time.Time        `json:"deleted_at"`
	Products  []ProductResponse `json:"products"`
}

// DeleteResponse acknowledges a deletion
type DeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// ProductInput describes one product to create
type ProductInput struct {
	Title       string                 `json:"title" binding:"required,notblank,max=255" example:"Medusa T-Shirt"`
	Handle      string                 `json:"handle" binding:"omitempty,max=255" example:"t-shirt"`
	Subtitle    string                 `json:"subtitle" binding:"omitempty,max=255"`
	Description string                 `json:"description" binding:"omitempty,max=5000"`
	Status      string                 `json:"status" binding:"omitempty,oneof=draft proposed published rejected"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// AdditionalData carries extra fields consumed by product creation hooks
type AdditionalData struct {
	BrandID *string `json:"brand_id"`
}

// CreateProductsRequest represents a request to create products
type CreateProductsRequest struct {
	Products       []ProductInput  `json:"products" binding:"required,min=1,dive"`
	AdditionalData *AdditionalData `json:"additional_data"`
}

// BrandIDFromAdditionalData returns the brand to link new products to, if any
func (r CreateProductsRequest) BrandIDFromAdditionalData() string {
	if r.AdditionalData == nil || r.AdditionalData.BrandID == nil {
		return ""
	}
	return *r.AdditionalData.BrandID
}

// ProductListFilter holds query options for listing products
type ProductListFilter struct {
	Q       string `form:"q"`
	BrandID string `form:"brand_id"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

// UpdateProductMetadataRequest shallow-merges metadata; null values delete keys
type UpdateProductMetadataRequest struct {
	Metadata map[string]interface{} `json:"metadata" binding:"required"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Handle      string                 `json:"handle"`
	Subtitle    string                 `json:"subtitle"`
	Description string                 `json:"description"`
	Status      string                 `json:"status"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProductWithBrandResponse is a product with its brand expanded
type ProductWithBrandResponse struct {
	ProductResponse
	Brand *BrandSummary `json:"brand"`
}

// BrandSummary is the brand embedded in product responses
type BrandSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SetProductBrandRequest links a product to a brand. A null brand_id clears the link.
type SetProductBrandRequest struct {
	BrandID *string `json:"brand_id" example:"brand_01JD3Z8Q4X7W6V5T4S3R2Q1P0N"`
}

// DismissProductBrandRequest removes a product's link to a brand
type DismissProductBrandRequest struct {
	BrandID string `json:"brand_id" binding:"required,notblank" example:"brand_01JD3Z8Q4X7W6V5T4S3R2Q1P0N"`
}

// ProductBrandResponse echoes the product and brand that were linked
type ProductBrandResponse struct {
	ProductID string  `json:"product_id"`
	BrandID   *string `json:"brand_id"`
}

// DismissProductBrandResponse acknowledges a dismissed link
type DismissProductBrandResponse struct {
	ProductID string `json:"product_id"`
	BrandID   string `json:"brand_id"`
	Dismissed bool   `json:"dismissed"`
}

// ToBrandResponse converts a domain Brand to a BrandResponse
func ToBrandResponse(b *catalog.Brand, products []catalog.Product) BrandResponse {
	resp := BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Products:  make([]ProductResponse, 0, len(products)),
	}
	if b.DeletedAt.Valid {
		deletedAt := b.DeletedAt.Time
		resp.DeletedAt = &deletedAt
	}
	for i := range products {
		resp.Products = append(resp.Products, ToProductResponse(&products[i]))
	}
	return resp
}

// ToProductResponse converts a domain Product to a ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	metadata := map[string]interface{}(p.Metadata)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Handle:      p.Handle,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Status:      string(p.Status),
		Metadata:    metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductWithBrandResponse converts a product and its optional brand
func ToProductWithBrandResponse(p *catalog.Product, brand *catalog.Brand) ProductWithBrandResponse {
	resp := ProductWithBrandResponse{ProductResponse: ToProductResponse(p)}
	if brand != nil {
		resp.Brand = &BrandSummary{ID: brand.ID, Name: brand.Name}
	}
	return resp
}
