package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/domain/auth"
	"devimantras/internal/pkg/response"
	"devimantras/internal/pkg/validator"
)

// SubmitForm is the form body of POST /feedback.
type SubmitForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// Handler handles feedback HTTP requests. Submission is public; the listing
// is admin-gated via query credentials.
type Handler struct {
	service *Service
	gate    *auth.Gate
}

func NewHandler(service *Service, gate *auth.Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

// Submit handles POST /feedback.
func (h *Handler) Submit(c *gin.Context) {
	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and message are required", errs)
		return
	}

	if err := h.service.Submit(c.Request.Context(), form.Name, form.Email, form.Message); err != nil {
		if errors.Is(err, ErrMessageRequired) {
			response.Error(c, http.StatusBadRequest, "MESSAGE_REQUIRED", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit feedback")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Feedback submitted"})
}

// List handles GET /feedback?username=..&password=..
func (h *Handler) List(c *gin.Context) {
	if !h.gate.Authenticate(c.Query("username"), c.Query("password")) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list feedback")
		return
	}
	response.Success(c, http.StatusOK, items)
}
