package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/onelearning/edusphere-api/internal/models"
)

// CatalogRepository serves the read-only topic/course/case catalog.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs the repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListTopics returns every topic.
func (r *CatalogRepository) ListTopics(ctx context.Context) ([]models.Topic, error) {
	const query = `SELECT id, title, description FROM topics ORDER BY id`
	topics := []models.Topic{}
	if err := r.db.SelectContext(ctx, &topics, query); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// ListCoursesByTopic returns the courses under a topic.
func (r *CatalogRepository) ListCoursesByTopic(ctx context.Context, topicID int64) ([]models.Course, error) {
	const query = `SELECT id, title, description FROM courses WHERE topic_id = $1 ORDER BY id`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, topicID); err != nil {
		return nil, fmt.Errorf("list courses by topic: %w", err)
	}
	return courses, nil
}

// ListCoursesByModule returns courses joined with their topic's title and
// description, a denormalized read model for the module view.
func (r *CatalogRepository) ListCoursesByModule(ctx context.Context, moduleID int64) ([]models.CourseWithTopic, error) {
	const query = `SELECT c.id, c.topic_id, c.title, c.description,
        t.title AS topic_title, t.description AS topic_description
        FROM courses c
        LEFT JOIN topics t ON c.topic_id = t.id
        WHERE c.topic_id = $1
        ORDER BY c.id`
	courses := []models.CourseWithTopic{}
	if err := r.db.SelectContext(ctx, &courses, query, moduleID); err != nil {
		return nil, fmt.Errorf("list courses by module: %w", err)
	}
	return courses, nil
}

// GetCourseOverview returns the overview for a course.
func (r *CatalogRepository) GetCourseOverview(ctx context.Context, courseID int64) (*models.CourseOverview, error) {
	const query = `SELECT course_id, objectives, structure, details FROM course_overviews WHERE course_id = $1 LIMIT 1`
	var overview models.CourseOverview
	if err := r.db.GetContext(ctx, &overview, query, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get course overview: %w", err)
	}
	return &overview, nil
}

// ListCases returns every clinical teaching case.
func (r *CatalogRepository) ListCases(ctx context.Context) ([]models.Case, error) {
	const query = `SELECT id, title, description, created_at FROM cases ORDER BY id`
	cases := []models.Case{}
	if err := r.db.SelectContext(ctx, &cases, query); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}
