package partner

import (
	"net/mail"
	"strings"

	"github.com/brandkit/backend/internal/domain/shared"
)

// CustomerIDPrefix prefixes every customer identifier
const CustomerIDPrefix = "cus"

// Customer is a storefront customer, registered or guest
type Customer struct {
	shared.BaseEntity
	Email      string `gorm:"type:text;not null;index"`
	FirstName  string `gorm:"type:text"`
	LastName   string `gorm:"type:text"`
	Phone      string `gorm:"type:text"`
	HasAccount bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customer"
}

// NewCustomer creates a customer
func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid customer email: "+email)
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(CustomerIDPrefix),
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
	}, nil
}

// FullName joins first and last name
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
