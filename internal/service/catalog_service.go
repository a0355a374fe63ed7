package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/models"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

type catalogRepository interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ListCoursesByTopic(ctx context.Context, topicID int64) ([]models.Course, error)
	ListCoursesByModule(ctx context.Context, moduleID int64) ([]models.CourseWithTopic, error)
	GetCourseOverview(ctx context.Context, courseID int64) (*models.CourseOverview, error)
	ListCases(ctx context.Context) ([]models.Case, error)
}

// CatalogService serves the read-only topic/course/case catalog.
type CatalogService struct {
	repo   catalogRepository
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo catalogRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, logger: logger}
}

// ListTopics returns every topic.
func (s *CatalogService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.repo.ListTopics(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch topics from the database")
	}
	return topics, nil
}

// ListCoursesByTopic returns the courses under a topic.
func (s *CatalogService) ListCoursesByTopic(ctx context.Context, topicID int64) ([]models.Course, error) {
	courses, err := s.repo.ListCoursesByTopic(ctx, topicID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch courses from the database")
	}
	return courses, nil
}

// ListCoursesByModule returns the denormalized course+topic listing.
func (s *CatalogService) ListCoursesByModule(ctx context.Context, moduleID int64) ([]models.CourseWithTopic, error) {
	courses, err := s.repo.ListCoursesByModule(ctx, moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error fetching courses.")
	}
	return courses, nil
}

// GetCourseOverview returns the overview or NotFound when the course has none.
func (s *CatalogService) GetCourseOverview(ctx context.Context, courseID int64) (*models.CourseOverview, error) {
	overview, err := s.repo.GetCourseOverview(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Course overview not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch course overview from the database")
	}
	return overview, nil
}

// ListCases returns the clinical case catalog.
func (s *CatalogService) ListCases(ctx context.Context) ([]models.Case, error) {
	cases, err := s.repo.ListCases(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch cases.")
	}
	return cases, nil
}
