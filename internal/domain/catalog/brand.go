package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brandkit/backend/internal/domain/shared"
)

// BrandIDPrefix prefixes every brand identifier
const BrandIDPrefix = "brand"

// MaxBrandNameLength is the longest accepted brand name, in characters
const MaxBrandNameLength = 255

// Brand is a named manufacturer or label that products can be linked to.
// A brand has many products; a product has at most one brand.
type Brand struct {
	shared.Aggregate
	Name string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brand"
}

// NewBrand creates a new brand
func NewBrand(name string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if err := validateBrandName(name); err != nil {
		return nil, err
	}

	brand := &Brand{
		Aggregate: shared.NewAggregate(BrandIDPrefix),
		Name:              name,
	}

	brand.Record(NewBrandCreatedEvent(brand))

	return brand, nil
}

// Rename changes the brand name
func (b *Brand) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateBrandName(name); err != nil {
		return err
	}

	b.Name = name
	b.UpdatedAt = time.Now()

	b.Record(NewBrandUpdatedEvent(b))

	return nil
}

// MarkDeleted records the deletion event; the repository performs the soft delete
func (b *Brand) MarkDeleted() {
	b.Record(NewBrandDeletedEvent(b))
}

func validateBrandName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxBrandNameLength {
		return shared.NewDomainError("INVALID_NAME", "Brand name cannot exceed 255 characters")
	}
	return nil
}
