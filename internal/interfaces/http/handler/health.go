package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// ReadinessCheck is one dependency probed by /ready
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves the public liveness and readiness probes
type HealthHandler struct {
	checks  []ReadinessCheck
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// HealthResponse is the body of both probes
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Pings the database and, when enabled, redis
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	results := lo.SliceToMap(h.checks, func(check ReadinessCheck) (string, string) {
		if err := check.Check(ctx); err != nil {
			return check.Name, err.Error()
		}
		return check.Name, "ok"
	})

	failed := lo.ContainsBy(lo.Values(results), func(status string) bool { return status != "ok" })
	if failed {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: results})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Checks: results})
}
