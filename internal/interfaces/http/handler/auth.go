package handler

import (
	"time"

	"github.com/brandkit/backend/internal/infrastructure/auth"
	"github.com/brandkit/backend/internal/interfaces/http/dto"
	"github.com/brandkit/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the admin session routes
type AuthHandler struct {
	BaseHandler
	blacklist auth.TokenBlacklist
	now       func() time.Time
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{blacklist: blacklist, now: time.Now}
}

// LogoutResponse confirms a revoked token
type LogoutResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Revoked bool   `json:"revoked"`
}

// Logout godoc
// @Summary      Revoke the current admin token
// @Description  Blacklists the presented token until it expires
// @Tags         auth
// @Produce      json
// @Success      200 {object} LogoutResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.ID == "" {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}

	if err := h.blacklist.AddToBlacklist(c.Request.Context(), claims.ID, claims.RemainingTTL(h.now())); err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, LogoutResponse{ID: claims.ID, Object: "auth_token", Revoked: true})
}
