package handler

import (
	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	"github.com/brandkit/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BrandHandler serves the admin brand routes
type BrandHandler struct {
	BaseHandler
	brandService *catalogapp.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService *catalogapp.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// BrandEnvelope wraps a single brand
type BrandEnvelope struct {
	Brand *catalogapp.BrandResponse `json:"brand"`
}

// BrandListResponse is one page of brands
type BrandListResponse struct {
	Brands []catalogapp.BrandResponse `json:"brands"`
	dto.ListResponse
}

// List godoc
// @Summary      List brands
// @Description  Lists brands with their linked products
// @Tags         brands
// @Produce      json
// @Param        q       query string false "Case-insensitive name match"
// @Param        limit   query int    false "Page size (default 50, max 100)"
// @Param        offset  query int    false "Offset"
// @Param        order   query string false "Sort field, prefix with - for descending"
// @Success      200 {object} BrandListResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	var filter catalogapp.BrandListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	page, err := h.brandService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, BrandListResponse{
		Brands:       page.Items,
		ListResponse: dto.ListResponse{Count: page.Count, Limit: page.Limit, Offset: page.Offset},
	})
}

// Create godoc
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateBrandRequest true "Brand"
// @Success      200 {object} BrandEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, BrandEnvelope{Brand: brand})
}

// Get godoc
// @Summary      Get a brand
// @Tags         brands
// @Produce      json
// @Param        id path string true "Brand ID"
// @Success      200 {object} BrandEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /brands/{id} [get]
func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.brandService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, BrandEnvelope{Brand: brand})
}

// Update godoc
// @Summary      Rename a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Brand ID"
// @Param        request body catalogapp.UpdateBrandRequest  true "Brand"
// @Success      200 {object} BrandEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /brands/{id} [put]
func (h *BrandHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	brand, err := h.brandService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, BrandEnvelope{Brand: brand})
}

// Delete godoc
// @Summary      Delete a brand
// @Description  Soft-deletes the brand and dismisses its product links
// @Tags         brands
// @Produce      json
// @Param        id path string true "Brand ID"
// @Success      200 {object} catalogapp.DeleteResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /brands/{id} [delete]
func (h *BrandHandler) Delete(c *gin.Context) {
	resp, err := h.brandService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
