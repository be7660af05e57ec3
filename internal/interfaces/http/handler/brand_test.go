package handler

import (
	"net/http"
	"testing"

	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	"github.com/brandkit/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/admin/brands", map[string]any{"name": "  Acme  "})

	requireStatus(t, w, http.StatusOK)
	resp := decodeJSON[BrandEnvelope](t, w)
	require.NotNil(t, resp.Brand)
	assert.Regexp(t, `^brand_[0-9A-Z]{26}$`, resp.Brand.ID)
	assert.Equal(t, "Acme", resp.Brand.Name)
	assert.Empty(t, resp.Brand.Products)
	assert.Nil(t, resp.Brand.DeletedAt)
}

func TestBrandHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantCode string
	}{
		{"missing name", map[string]any{}, dto.ErrCodeValidation},
		{"blank name", map[string]any{"name": "   "}, dto.ErrCodeValidation},
		{"wrong type", map[string]any{"name": 42}, dto.ErrCodeInvalidInput},
		{"malformed body", `{"name":`, dto.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			w := env.do(http.MethodPost, "/admin/brands", tt.body)

			requireStatus(t, w, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestBrandHandler_GetIncludesProducts(t *testing.T) {
	env := newTestEnv(t)
	brand := env.seedBrand("Acme")
	product := env.seedProduct("Anvil")
	env.seedLink(product.ID, brand.ID)

	w := env.do(http.MethodGet, "/admin/brands/"+brand.ID, nil)

	requireStatus(t, w, http.StatusOK)
	resp := decodeJSON[BrandEnvelope](t, w)
	require.Len(t, resp.Brand.Products, 1)
	assert.Equal(t, product.ID, resp.Brand.Products[0].ID)
	assert.Equal(t, "anvil", resp.Brand.Products[0].Handle)
}

func TestBrandHandler_GetNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/admin/brands/brand_missing", nil)

	requireStatus(t, w, http.StatusNotFound)
	resp := decodeJSON[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "brand_missing")
	assert.NotEmpty(t, resp.Error.RequestID)
}

func TestBrandHandler_List(t *testing.T) {
	env := newTestEnv(t)
	env.seedBrand("Acme")
	env.seedBrand("Globex")
	env.seedBrand("Acme Outlet")

	t.Run("all brands", func(t *testing.T) {
		w := env.do(http.MethodGet, "/admin/brands", nil)

		requireStatus(t, w, http.StatusOK)
		resp := decodeJSON[BrandListResponse](t, w)
		assert.Len(t, resp.Brands, 3)
		assert.EqualValues(t, 3, resp.Count)
		assert.Equal(t, 50, resp.Limit)
		assert.Equal(t, 0, resp.Offset)
	})

	t.Run("search and order", func(t *testing.T) {
		w := env.do(http.MethodGet, "/admin/brands?q=acme&order=-name", nil)

		requireStatus(t, w, http.StatusOK)
		resp := decodeJSON[BrandListResponse](t, w)
		require.Len(t, resp.Brands, 2)
		assert.Equal(t, "Acme Outlet", resp.Brands[0].Name)
		assert.Equal(t, "Acme", resp.Brands[1].Name)
		assert.EqualValues(t, 2, resp.Count)
	})

	t.Run("paging", func(t *testing.T) {
		w := env.do(http.MethodGet, "/admin/brands?limit=1&offset=1&order=name", nil)

		requireStatus(t, w, http.StatusOK)
		resp := decodeJSON[BrandListResponse](t, w)
		require.Len(t, resp.Brands, 1)
		assert.Equal(t, "Acme Outlet", resp.Brands[0].Name)
		assert.EqualValues(t, 3, resp.Count)
		assert.Equal(t, 1, resp.Limit)
		assert.Equal(t, 1, resp.Offset)
	})

	t.Run("invalid order", func(t *testing.T) {
		w := env.do(http.MethodGet, "/admin/brands?order=id", nil)

		requireStatus(t, w, http.StatusBadRequest)
		resp := decodeJSON[dto.ErrorResponse](t, w)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "order", resp.Error.Details[0].Field)
	})

	t.Run("limit above maximum", func(t *testing.T) {
		w := env.do(http.MethodGet, "/admin/brands?limit=500", nil)

		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestBrandHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	brand := env.seedBrand("Acme")

	w := env.do(http.MethodPut, "/admin/brands/"+brand.ID, map[string]any{"name": "Acme Corp"})

	requireStatus(t, w, http.StatusOK)
	resp := decodeJSON[BrandEnvelope](t, w)
	assert.Equal(t, brand.ID, resp.Brand.ID)
	assert.Equal(t, "Acme Corp", resp.Brand.Name)

	stored, err := env.brands.FindByID(t.Context(), brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stored.Name)
}

func TestBrandHandler_UpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/admin/brands/brand_missing", map[string]any{"name": "Acme"})

	requireStatus(t, w, http.StatusNotFound)
}

func TestBrandHandler_DeleteDismissesLinks(t *testing.T) {
	env := newTestEnv(t)
	brand := env.seedBrand("Acme")
	product := env.seedProduct("Anvil")
	env.seedLink(product.ID, brand.ID)

	w := env.do(http.MethodDelete, "/admin/brands/"+brand.ID, nil)

	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, catalogapp.DeleteResponse{ID: brand.ID, Object: "brand", Deleted: true},
		decodeJSON[catalogapp.DeleteResponse](t, w))

	requireStatus(t, env.do(http.MethodGet, "/admin/brands/"+brand.ID, nil), http.StatusNotFound)

	links, err := env.links.FindByProductIDs(t.Context(), []string{product.ID})
	require.NoError(t, err)
	assert.Empty(t, links)

	productResp := decodeJSON[ProductEnvelope](t, env.do(http.MethodGet, "/admin/products/"+product.ID, nil))
	assert.Nil(t, productResp.Product.Brand)
}

func TestBrandHandler_DeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodDelete, "/admin/brands/brand_missing", nil)

	requireStatus(t, w, http.StatusNotFound)
}
