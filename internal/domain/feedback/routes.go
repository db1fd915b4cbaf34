package feedback

import "github.com/gin-gonic/gin"

// RegisterRoutes registers feedback routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/feedback", h.Submit)
	r.GET("/feedback", h.List)
}
