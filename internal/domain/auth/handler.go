package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devimantras/internal/pkg/response"
	"devimantras/internal/pkg/validator"
)

// LoginForm is the form body of POST /auth/login.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Handler handles the admin login check.
type Handler struct {
	gate *Gate
}

func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

// Login handles POST /auth/login. It only verifies the pair; no session is
// created.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}
	if errs := validator.Validate(&form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required", errs)
		return
	}

	if !h.gate.Authenticate(form.Username, form.Password) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Login successful"})
}
