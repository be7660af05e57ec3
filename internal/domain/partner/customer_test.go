package partner

import (
	"testing"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		customer, err := NewCustomer(" Jane@Example.COM ", "Jane", "Doe")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", customer.Email)
		assert.Equal(t, "Jane Doe", customer.FullName())
		assert.True(t, shared.HasPrefix(customer.ID, CustomerIDPrefix))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewCustomer("not-an-email", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid customer email")
	})
}
