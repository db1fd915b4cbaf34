package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers auth routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/auth/login", h.Login)
}
