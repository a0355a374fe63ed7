package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// DashboardHandler serves the aggregated landing-page counters.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Stats godoc
// @Summary Dashboard counters for one user
// @Tags Dashboard
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} dto.DashboardStats
// @Failure 400 {object} map[string]string
// @Router /dashboard-stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Username is required"))
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
