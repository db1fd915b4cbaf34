package system

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/pkg/response"
)

// Handler serves the root, health and version endpoints.
type Handler struct {
	ping    func(ctx context.Context) error
	version string
}

// NewHandler wires the store connectivity probe and the build version.
func NewHandler(ping func(ctx context.Context) error, version string) *Handler {
	return &Handler{ping: ping, version: version}
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Devi Mantras API is running"})
}

// Health handles GET /health; a failed store probe reports 500.
func (h *Handler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Store unreachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Version handles GET /version.
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

// RegisterRoutes registers the system routes at the router root.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/version", h.Version)
}
