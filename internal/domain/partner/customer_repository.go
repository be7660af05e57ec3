package partner

import (
	"context"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// Count counts all customers
	Count(ctx context.Context) (int64, error)

	// FindByEmail finds a customer by email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
}
