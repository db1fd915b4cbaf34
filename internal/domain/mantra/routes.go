package mantra

import (
	"github.com/gin-gonic/gin"

	"devimantras/internal/domain/media"
)

// RegisterRoutes registers mantra routes. Write endpoints are deliberately
// open; only contact writes and feedback reads are admin-gated.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	mantras := r.Group("/mantras")
	{
		mantras.POST("/upload", h.Upload)
		mantras.GET("", h.List)
		mantras.GET("/grouped", h.Grouped)
		mantras.GET("/:id", h.Get)
		mantras.GET("/:id/image", h.Attachment(media.SlotImage))
		mantras.GET("/:id/pdf", h.Attachment(media.SlotPDF))
		mantras.GET("/:id/audio", h.Attachment(media.SlotAudio))
		mantras.PUT("/:id", h.Edit)
		mantras.DELETE("/:id", h.Delete)
	}
}
