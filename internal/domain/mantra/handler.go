package mantra

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/pkg/response"
	"devimantras/internal/pkg/validator"
)

// Handler handles mantra HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /mantras/upload: metadata form fields plus mandatory
// image and pdf files and an optional audio file.
func (h *Handler) Upload(c *gin.Context) {
	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", errs)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "IMAGE_REQUIRED", "Image file is required")
		return
	}
	pdf, err := c.FormFile("pdf")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "PDF_REQUIRED", "PDF file is required")
		return
	}
	audio, _ := c.FormFile("audio")

	m, err := h.service.Upload(c.Request.Context(), UploadInput{
		Name:        form.Name,
		Language:    form.Language,
		Description: form.Description,
		Category:    form.Category,
		Image:       image,
		PDF:         pdf,
		Audio:       audio,
	})
	if err != nil {
		if errors.Is(err, ErrCategoryRequired) || errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload mantra")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": m.ID.Hex()})
}

// List handles GET /mantras with optional category/language query filters.
func (h *Handler) List(c *gin.Context) {
	mantras, err := h.service.List(c.Request.Context(), c.Query("category"), c.Query("language"))
	if err != nil {
		if errors.Is(err, ErrCategoryRequired) || errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list mantras")
		return
	}
	response.Success(c, http.StatusOK, ToResponseList(mantras))
}

// Grouped handles GET /mantras/grouped: every allowed category appears as a
// key, empty ones included.
func (h *Handler) Grouped(c *gin.Context) {
	grouped, err := h.service.Grouped(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to group mantras")
		return
	}

	out := make(map[string][]Response, len(grouped))
	for cat, ms := range grouped {
		out[cat] = ToResponseList(ms)
	}
	response.Success(c, http.StatusOK, out)
}

// Get handles GET /mantras/{id}.
func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(m))
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

// Edit handles PUT /mantras/{id}: full metadata replacement plus optional
// attachment replacements.
func (h *Handler) Edit(c *gin.Context) {
	var form EditForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", errs)
		return
	}

	image, _ := c.FormFile("image")
	pdf, _ := c.FormFile("pdf")
	audio, _ := c.FormFile("audio")

	m, err := h.service.Edit(c.Request.Context(), c.Param("id"), EditInput{
		Name:        form.Name,
		Language:    form.Language,
		Description: form.Description,
		Category:    form.Category,
		Image:       image,
		PDF:         pdf,
		Audio:       audio,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToResponse(m))
}

// Delete handles DELETE /mantras/{id}.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Mantra deleted"})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid mantra ID")
	case errors.Is(err, ErrCategoryRequired) || errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "MANTRA_NOT_FOUND", "Mantra not found")
	case errors.Is(err, ErrAttachmentNotFound):
		response.Error(c, http.StatusNotFound, "ATTACHMENT_NOT_FOUND", "Attachment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
