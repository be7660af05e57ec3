package shared

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("prefixes and encodes 26 characters", func(t *testing.T) {
		id := NewID("brand")
		require.True(t, strings.HasPrefix(id, "brand_"))
		assert.Len(t, strings.TrimPrefix(id, "brand_"), 26)
		assert.True(t, HasPrefix(id, "brand"))
		assert.False(t, HasPrefix(id, "prod"))
	})

	t.Run("without prefix", func(t *testing.T) {
		assert.Len(t, NewID(""), 26)
	})

	t.Run("ids are unique and time ordered", func(t *testing.T) {
		first := NewID("x")
		second := NewID("x")
		assert.NotEqual(t, first, second)
		assert.LessOrEqual(t, first[:12], second[:12])
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "order_01", ShortID("order_01JD3Z", 8))
	assert.Equal(t, "abc", ShortID("abc", 8))
}

func TestDomainError_Is(t *testing.T) {
	wrapped := fmt.Errorf("loading brand: %w", NewNotFoundError("Brand", "brand_1"))

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrAlreadyExists))

	domainErr, ok := AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Brand with id: brand_1 was not found", domainErr.Message)
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Limit: 500, Offset: -3, OrderDir: "sideways"}.Normalize()
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
	assert.Equal(t, "desc", f.OrderDir)
	assert.NotNil(t, f.Filters)

	f = Filter{}.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
}
