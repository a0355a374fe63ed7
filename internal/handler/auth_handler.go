package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// AuthHandler wires the signup/login endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Signup godoc
// @Summary Register a user
// @Description Create a user account; students must supply a numeric academic year
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "User created successfully!"})
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by email, password, and role
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// ListStudents godoc
// @Summary List students by academic year
// @Tags Authentication
// @Produce json
// @Param year query int true "Academic year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /students [get]
func (h *AuthHandler) ListStudents(c *gin.Context) {
	raw := c.Query("year")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Year query parameter is required."))
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Year must be a valid number."))
		return
	}

	students, err := h.service.ListStudents(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"students": students})
}
