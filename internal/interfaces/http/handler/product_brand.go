package handler

import (
	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductBrandHandler serves the product to brand link routes
type ProductBrandHandler struct {
	BaseHandler
	linkService *catalogapp.ProductBrandService
}

// NewProductBrandHandler creates a new ProductBrandHandler
func NewProductBrandHandler(linkService *catalogapp.ProductBrandService) *ProductBrandHandler {
	return &ProductBrandHandler{linkService: linkService}
}

// SetBrand godoc
// @Summary      Link a product to a brand
// @Description  Replaces the product's brand. A null or missing brand_id removes the current link.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                              true  "Product ID"
// @Param        request body catalogapp.SetProductBrandRequest   false "Brand"
// @Success      200 {object} catalogapp.ProductBrandResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/brand [post]
func (h *ProductBrandHandler) SetBrand(c *gin.Context) {
	var req catalogapp.SetProductBrandRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}

	resp, err := h.linkService.SetBrand(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// DismissBrand godoc
// @Summary      Unlink a product from a brand
// @Description  Removing a link that does not exist succeeds
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                                  true "Product ID"
// @Param        request body catalogapp.DismissProductBrandRequest   true "Brand"
// @Success      200 {object} catalogapp.DismissProductBrandResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id}/dismiss/brand [post]
func (h *ProductBrandHandler) DismissBrand(c *gin.Context) {
	var req catalogapp.DismissProductBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.linkService.DismissBrand(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
