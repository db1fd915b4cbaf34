package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/pkg/response"
	"devimantras/internal/pkg/validator"
)

// Handler handles event HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /events.
func (h *Handler) Create(c *gin.Context) {
	var form CreateForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Event name is required", errs)
		return
	}

	image, _ := c.FormFile("image")
	pdf, _ := c.FormFile("pdf")

	e, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:        form.Name,
		Description: form.Description,
		Image:       image,
		PDF:         pdf,
	})
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.Error(c, http.StatusBadRequest, "NAME_REQUIRED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create event")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": e.ID.Hex()})
}

// List handles GET /events. Bare events carry the synthetic upcoming marker.
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list events")
		return
	}
	response.Success(c, http.StatusOK, ToResponseList(events))
}

// Attachment returns the handler streaming the named slot's raw bytes with
// the stored content type.
func (h *Handler) Attachment(slot string) gin.HandlerFunc {
	return func(c *gin.Context) {
		att, err := h.service.GetAttachment(c.Request.Context(), c.Param("id"), slot)
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.Data(http.StatusOK, att.ContentType, att.Data)
	}
}

// Update handles PUT /events/{id}: only non-empty fields are applied.
func (h *Handler) Update(c *gin.Context) {
	var form UpdateForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}

	image, _ := c.FormFile("image")
	pdf, _ := c.FormFile("pdf")

	err := h.service.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Name:        form.Name,
		Description: form.Description,
		Image:       image,
		PDF:         pdf,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event updated"})
}

// Delete handles DELETE /events/{id}.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event ID")
	case errors.Is(err, ErrNoUpdates):
		response.Error(c, http.StatusBadRequest, "NO_UPDATES", "No update data provided")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
	case errors.Is(err, ErrAttachmentNotFound):
		response.Error(c, http.StatusNotFound, "ATTACHMENT_NOT_FOUND", "Attachment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
