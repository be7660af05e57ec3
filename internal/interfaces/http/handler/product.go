package handler

import (
	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	"github.com/brandkit/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the admin product routes
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductEnvelope wraps a single product
type ProductEnvelope struct {
	Product *catalogapp.ProductWithBrandResponse `json:"product"`
}

// ProductsEnvelope wraps created products
type ProductsEnvelope struct {
	Products []catalogapp.ProductWithBrandResponse `json:"products"`
}

// ProductListResponse is one page of products
type ProductListResponse struct {
	Products []catalogapp.ProductWithBrandResponse `json:"products"`
	dto.ListResponse
}

// Create godoc
// @Summary      Create products
// @Description  Creates products and, when additional_data.brand_id is set, links them to that brand
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductsRequest true "Products"
// @Success      200 {object} ProductsEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	products, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, ProductsEnvelope{Products: products})
}

// List godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        q        query string false "Title or handle match"
// @Param        brand_id query string false "Only products of this brand"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Offset"
// @Success      200 {object} ProductListResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, ProductListResponse{
		Products:     page.Items,
		ListResponse: dto.ListResponse{Count: page.Count, Limit: page.Limit, Offset: page.Offset},
	})
}

// Get godoc
// @Summary      Get a product with its brand
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} ProductEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, ProductEnvelope{Product: product})
}

// UpdateMetadata godoc
// @Summary      Merge product metadata
// @Description  Shallow-merges metadata into the product; null values remove keys
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                                   true "Product ID"
// @Param        request body catalogapp.UpdateProductMetadataRequest  true "Metadata patch"
// @Success      200 {object} ProductEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/metadata [post]
func (h *ProductHandler) UpdateMetadata(c *gin.Context) {
	var req catalogapp.UpdateProductMetadataRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateMetadata(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, ProductEnvelope{Product: product})
}
