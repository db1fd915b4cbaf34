package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/domain/auth"
	"devimantras/internal/pkg/response"
)

// SaveForm is the form body of POST /contact. The admin credentials ride in
// the same form as the profile fields.
type SaveForm struct {
	Username     string `form:"username"`
	Password     string `form:"password"`
	Phone        string `form:"phone"`
	Email        string `form:"email"`
	Location     string `form:"location"`
	MapEmbed     string `form:"map_embed"`
	HeroImageURL string `form:"hero_image_url"`
}

// Handler handles contact-profile HTTP requests. Writes are admin-gated;
// reads are public.
type Handler struct {
	service *Service
	gate    *auth.Gate
}

func NewHandler(service *Service, gate *auth.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// Get handles GET /contact. It never 404s: an unset profile reads as the
// fixed default payload.
func (h *Handler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load contact profile")
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// Save handles POST /contact.
func (h *Handler) Save(c *gin.Context) {
	var form SaveForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}

	if !h.gate.Authenticate(form.Username, form.Password) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	profile, err := h.service.Save(c.Request.Context(), SaveInput{
		Phone:        form.Phone,
		Email:        form.Email,
		Location:     form.Location,
		MapEmbed:     form.MapEmbed,
		HeroImageURL: form.HeroImageURL,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", "Invalid email")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save contact profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Contact profile saved",
		"contact": profile,
	})
}

// Clear handles DELETE /contact.
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear contact profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Contact profile cleared"})
}
