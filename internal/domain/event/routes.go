package event

import (
	"github.com/gin-gonic/gin"

	"devimantras/internal/domain/media"
)

// RegisterRoutes registers event routes; all of them are public.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	events := r.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id/image", h.Attachment(media.SlotImage))
		events.GET("/:id/pdf", h.Attachment(media.SlotPDF))
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
