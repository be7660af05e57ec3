package catalog

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
)

// ProductIDPrefix prefixes every product identifier
const ProductIDPrefix = "prod"

// ProductStatus represents the publication status of a product
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusProposed  ProductStatus = "proposed"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusRejected  ProductStatus = "rejected"
)

// IsValid reports whether s is a known product status
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusProposed, ProductStatusPublished, ProductStatusRejected:
		return true
	}
	return false
}

// Product is a sellable catalog item.
// Metadata is free-form JSON edited by the admin widgets (SEO fields, notes, tags).
type Product struct {
	shared.Aggregate
	Title       string            `gorm:"type:text;not null"`
	Handle      string            `gorm:"type:text;not null;uniqueIndex:idx_product_handle,where:deleted_at IS NULL"`
	Subtitle    string            `gorm:"type:text"`
	Description string            `gorm:"type:text"`
	Status      ProductStatus     `gorm:"type:text;not null;default:'draft'"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "product"
}

// NewProductInput holds the fields accepted when creating a product
type NewProductInput struct {
	Title       string
	Handle      string
	Subtitle    string
	Description string
	Status      ProductStatus
	Metadata    map[string]interface{}
}

// NewProduct creates a new product. The handle defaults to a slug of the title.
func NewProduct(input NewProductInput) (*Product, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateProductTitle(title); err != nil {
		return nil, err
	}

	handle := strings.TrimSpace(input.Handle)
	if handle == "" {
		handle = Slugify(title)
	}
	if err := validateProductHandle(handle); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ProductStatusDraft
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid product status: "+string(status))
	}

	metadata := datatypes.JSONMap{}
	for k, v := range input.Metadata {
		if v != nil {
			metadata[k] = v
		}
	}

	product := &Product{
		Aggregate: shared.NewAggregate(ProductIDPrefix),
		Title:             title,
		Handle:            handle,
		Subtitle:          input.Subtitle,
		Description:       input.Description,
		Status:            status,
		Metadata:          metadata,
	}

	product.Record(NewProductCreatedEvent(product))

	return product, nil
}

// MergeMetadata shallow-merges patch into the product metadata.
// Keys whose value is nil are removed.
func (p *Product) MergeMetadata(patch map[string]interface{}) {
	if p.Metadata == nil {
		p.Metadata = datatypes.JSONMap{}
	}
	for k, v := range patch {
		if v == nil {
			delete(p.Metadata, k)
			continue
		}
		p.Metadata[k] = v
	}
	p.UpdatedAt = time.Now()

	p.Record(NewProductMetadataUpdatedEvent(p, patch))
}

var (
	handlePattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify transliterates s and joins its alphanumeric runs with hyphens.
// slug.Make keeps underscores, which handles do not allow.
func Slugify(s string) string {
	return strings.Trim(nonSlugPattern.ReplaceAllString(slug.Make(s), "-"), "-")
}

func validateProductTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if utf8.RuneCountInString(title) > 255 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 255 characters")
	}
	return nil
}

func validateProductHandle(handle string) error {
	if handle == "" {
		return shared.NewDomainError("INVALID_HANDLE", "Product handle cannot be empty")
	}
	if !handlePattern.MatchString(handle) {
		return shared.NewDomainError("INVALID_HANDLE", "Product handle can only contain lowercase letters, digits and single hyphens")
	}
	return nil
}
