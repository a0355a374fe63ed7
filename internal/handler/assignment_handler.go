package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// AssignmentHandler serves assignment publishing and student traversals.
type AssignmentHandler struct {
	service *service.AssignmentService
}

// NewAssignmentHandler creates a new handler.
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// Publish godoc
// @Summary Publish an assignment
// @Description Create an assignment linking a module to course and student sets
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body models.PublishAssignmentRequest true "Assignment payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /assignments [post]
func (h *AssignmentHandler) Publish(c *gin.Context) {
	var req models.PublishAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing or invalid required fields."))
		return
	}

	if _, err := h.service.Publish(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Assignment published successfully!"})
}

// ListByTopic godoc
// @Summary List assignments under a module
// @Tags Assignments
// @Produce json
// @Param topicId path int true "Topic id"
// @Success 200 {array} models.AssignmentSummary
// @Router /assignments/topic/{topicId} [get]
func (h *AssignmentHandler) ListByTopic(c *gin.Context) {
	topicID, ok := pathID(c, "topicId")
	if !ok {
		return
	}
	summaries, err := h.service.ListByTopic(c.Request.Context(), topicID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries)
}

// ListTopicsForStudent godoc
// @Summary List topics assigned to a student
// @Tags Assignments
// @Produce json
// @Param studentId path int true "Student id"
// @Success 200 {array} models.Topic
// @Router /student/topics/{studentId} [get]
func (h *AssignmentHandler) ListTopicsForStudent(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	topics, err := h.service.ListTopicsForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topics)
}

// ListCoursesForStudent godoc
// @Summary List courses assigned to a student within a module
// @Tags Assignments
// @Produce json
// @Param topicId path int true "Topic id"
// @Param studentId path int true "Student id"
// @Success 200 {array} models.Course
// @Router /student/courses/{topicId}/{studentId} [get]
func (h *AssignmentHandler) ListCoursesForStudent(c *gin.Context) {
	topicID, ok := pathID(c, "topicId")
	if !ok {
		return
	}
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	courses, err := h.service.ListCoursesForStudent(c.Request.Context(), topicID, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}
