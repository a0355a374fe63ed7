package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/models"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

type assignmentRepository interface {
	Publish(ctx context.Context, moduleID int64, courseIDs, studentIDs []int64) (int64, error)
	ListByTopic(ctx context.Context, topicID int64) ([]models.AssignmentSummary, error)
	ListTopicsForStudent(ctx context.Context, studentID int64) ([]models.Topic, error)
	ListCoursesForStudent(ctx context.Context, topicID, studentID int64) ([]models.Course, error)
}

type statsInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// AssignmentService publishes assignments and resolves their traversals.
type AssignmentService struct {
	repo   assignmentRepository
	stats  statsInvalidator
	logger *zap.Logger
}

// NewAssignmentService constructs an AssignmentService. stats may be nil
// when no dashboard cache is configured.
func NewAssignmentService(repo assignmentRepository, stats statsInvalidator, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{repo: repo, stats: stats, logger: logger}
}

// Publish validates the request and runs the multi-table insert atomically.
// Empty id collections are permitted; absent ones are not.
func (s *AssignmentService) Publish(ctx context.Context, req models.PublishAssignmentRequest) (int64, error) {
	if req.ModuleID == nil || req.SelectedCourses == nil || req.SelectedStudents == nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Missing or invalid required fields.")
	}

	assignmentID, err := s.repo.Publish(ctx, *req.ModuleID, *req.SelectedCourses, *req.SelectedStudents)
	if err != nil {
		s.logger.Error("assignment publish rolled back",
			zap.Int64("module_id", *req.ModuleID),
			zap.Int("courses", len(*req.SelectedCourses)),
			zap.Int("students", len(*req.SelectedStudents)),
			zap.Error(err))
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "An error occurred while publishing the assignment.")
	}

	// New links change assigned-course counts, so cached dashboard stats
	// are stale for every user from here on.
	if s.stats != nil {
		if err := s.stats.DeleteByPattern(ctx, statsCacheKeyPrefix+"*"); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
		}
	}

	s.logger.Info("assignment published",
		zap.Int64("assignment_id", assignmentID),
		zap.Int64("module_id", *req.ModuleID))
	return assignmentID, nil
}

// ListByTopic lists assignments under one module, newest first.
func (s *AssignmentService) ListByTopic(ctx context.Context, topicID int64) ([]models.AssignmentSummary, error) {
	summaries, err := s.repo.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error fetching assignments by topic.")
	}
	return summaries, nil
}

// ListTopicsForStudent lists the distinct topics assigned to a student.
func (s *AssignmentService) ListTopicsForStudent(ctx context.Context, studentID int64) ([]models.Topic, error) {
	topics, err := s.repo.ListTopicsForStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error fetching topics for student.")
	}
	return topics, nil
}

// ListCoursesForStudent lists the distinct courses assigned to a student
// within one module.
func (s *AssignmentService) ListCoursesForStudent(ctx context.Context, topicID, studentID int64) ([]models.Course, error) {
	courses, err := s.repo.ListCoursesForStudent(ctx, topicID, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch courses for student.")
	}
	return courses, nil
}
