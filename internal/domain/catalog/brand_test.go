package catalog

import (
	"strings"
	"testing"

	"github.com/brandkit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrand(t *testing.T) {
	t.Run("creates brand with valid name", func(t *testing.T) {
		brand, err := NewBrand("Acme")
		require.NoError(t, err)
		require.NotNil(t, brand)

		assert.Equal(t, "Acme", brand.Name)
		assert.True(t, shared.HasPrefix(brand.ID, BrandIDPrefix))
		assert.False(t, brand.CreatedAt.IsZero())
		assert.False(t, brand.IsDeleted())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		brand, err := NewBrand("  Acme  ")
		require.NoError(t, err)
		assert.Equal(t, "Acme", brand.Name)
	})

	t.Run("publishes BrandCreated event", func(t *testing.T) {
		brand, err := NewBrand("Acme")
		require.NoError(t, err)

		events := brand.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBrandCreated, events[0].EventType())
		assert.Equal(t, brand.ID, events[0].AggregateID())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewBrand("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewBrand(strings.Repeat("a", 256))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 255 characters")
	})

	t.Run("generates unique ids", func(t *testing.T) {
		a, _ := NewBrand("A")
		b, _ := NewBrand("B")
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestBrand_Rename(t *testing.T) {
	brand, err := NewBrand("Acme")
	require.NoError(t, err)
	brand.PullEvents()

	t.Run("renames and publishes BrandUpdated", func(t *testing.T) {
		require.NoError(t, brand.Rename("Acme Corp"))
		assert.Equal(t, "Acme Corp", brand.Name)

		events := brand.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBrandUpdated, events[0].EventType())
	})

	t.Run("rejects empty name and keeps old one", func(t *testing.T) {
		err := brand.Rename("")
		require.Error(t, err)
		assert.Equal(t, "Acme Corp", brand.Name)
	})
}

func TestBrand_MarkDeleted(t *testing.T) {
	brand, err := NewBrand("Acme")
	require.NoError(t, err)
	brand.PullEvents()

	brand.MarkDeleted()

	events := brand.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeBrandDeleted, events[0].EventType())
	assert.Empty(t, brand.PullEvents(), "pulled events are not delivered twice")
}
