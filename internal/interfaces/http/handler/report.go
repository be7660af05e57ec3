package handler

import (
	"net/http"

	reportapp "github.com/brandkit/backend/internal/application/report"
	"github.com/brandkit/backend/internal/infrastructure/logger"
	"github.com/brandkit/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Failure messages of the report routes
const (
	promotionPerformanceFailed = "Failed to fetch promotion performance"
	storeStatsFailed           = "Failed to fetch reports data"
)

// ReportHandler serves the admin report routes. Unlike the other admin
// routes, every failure is a 500 with the flat {error, message} body.
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// PromotionPerformance godoc
// @Summary      Promotion performance
// @Description  Usage, discount and order value totals for one promotion
// @Tags         reports
// @Produce      json
// @Param        id path string true "Promotion ID"
// @Success      200 {object} reportapp.PromotionPerformanceResponse
// @Failure      500 {object} dto.ReportErrorResponse
// @Security     BearerAuth
// @Router       /promotions/{id}/performance [get]
func (h *ReportHandler) PromotionPerformance(c *gin.Context) {
	promotionID := c.Param("id")
	performance, err := h.reportService.GetPromotionPerformance(c.Request.Context(), promotionID)
	if err != nil {
		logger.GetGinLogger(c).Error("Error fetching promotion performance",
			zap.String("promotion_id", promotionID),
			zap.Error(err))
		h.reportFailure(c, promotionPerformanceFailed, err)
		return
	}
	h.OK(c, performance)
}

// StoreStats godoc
// @Summary      Store statistics
// @Description  Order count, completed revenue, customer count and recent orders
// @Tags         reports
// @Produce      json
// @Success      200 {object} reportapp.StoreStatsResponse
// @Failure      500 {object} dto.ReportErrorResponse
// @Security     BearerAuth
// @Router       /reports/stats [get]
func (h *ReportHandler) StoreStats(c *gin.Context) {
	stats, err := h.reportService.GetStoreStats(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("Error fetching reports data", zap.Error(err))
		h.reportFailure(c, storeStatsFailed, err)
		return
	}
	h.OK(c, stats)
}

func (h *ReportHandler) reportFailure(c *gin.Context, summary string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ReportErrorResponse{
		Error:   summary,
		Message: err.Error(),
	})
}
