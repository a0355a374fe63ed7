package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// CatalogHandler serves the read-only topic, course, and case catalog.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListTopics godoc
// @Summary List all topics
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Topic
// @Router /topics [get]
func (h *CatalogHandler) ListTopics(c *gin.Context) {
	topics, err := h.service.ListTopics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topics)
}

// ListCoursesByTopic godoc
// @Summary List courses under a topic
// @Tags Catalog
// @Produce json
// @Param topicId path int true "Topic id"
// @Success 200 {array} models.Course
// @Router /courses/{topicId} [get]
func (h *CatalogHandler) ListCoursesByTopic(c *gin.Context) {
	topicID, ok := pathID(c, "topicId")
	if !ok {
		return
	}
	courses, err := h.service.ListCoursesByTopic(c.Request.Context(), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// ListCoursesByModule godoc
// @Summary List courses with their topic fields for a module
// @Tags Catalog
// @Produce json
// @Param moduleId path int true "Module id"
// @Success 200 {array} models.CourseWithTopic
// @Router /module-courses/{moduleId} [get]
func (h *CatalogHandler) ListCoursesByModule(c *gin.Context) {
	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}
	courses, err := h.service.ListCoursesByModule(c.Request.Context(), moduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// GetCourseOverview godoc
// @Summary Fetch the overview for one course
// @Tags Catalog
// @Produce json
// @Param courseId path int true "Course id"
// @Success 200 {object} models.CourseOverview
// @Failure 404 {object} map[string]string
// @Router /course-overview/{courseId} [get]
func (h *CatalogHandler) GetCourseOverview(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	overview, err := h.service.GetCourseOverview(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// ListCases godoc
// @Summary List all clinical cases
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Case
// @Router /cases [get]
func (h *CatalogHandler) ListCases(c *gin.Context) {
	cases, err := h.service.ListCases(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cases)
}

// pathID parses a numeric path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
