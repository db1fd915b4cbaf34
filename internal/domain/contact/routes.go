package contact

import "github.com/gin-gonic/gin"

// RegisterRoutes registers contact-profile routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/contact", h.Get)
	r.POST("/contact", h.Save)
	r.DELETE("/contact", h.Clear)
}
