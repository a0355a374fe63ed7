package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DashboardRepository runs the counting queries behind the stats view.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository constructs the repository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CountAssignedCourses counts case assignments held by the given username.
func (r *DashboardRepository) CountAssignedCourses(ctx context.Context, username string) (int, error) {
	const query = `SELECT COUNT(*) FROM case_assignments WHERE student_name = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, username); err != nil {
		return 0, fmt.Errorf("count assigned courses: %w", err)
	}
	return count, nil
}

// CountAvailableCourses counts the whole course catalog.
func (r *DashboardRepository) CountAvailableCourses(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM courses`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count available courses: %w", err)
	}
	return count, nil
}

// AmendmentsTableExists probes the schema for the optional amendments table.
// Deployments without the amendments feature simply lack the table.
func (r *DashboardRepository) AmendmentsTableExists(ctx context.Context) (bool, error) {
	const query = `SELECT COUNT(*) FROM information_schema.tables
        WHERE table_schema = current_schema() AND table_name = 'amendments'`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return false, fmt.Errorf("probe amendments table: %w", err)
	}
	return count > 0, nil
}

// CountAmendments counts amendments for the username. Callers must gate this
// behind AmendmentsTableExists.
func (r *DashboardRepository) CountAmendments(ctx context.Context, username string) (int, error) {
	const query = `SELECT COUNT(*) FROM amendments WHERE student_name = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, username); err != nil {
		return 0, fmt.Errorf("count amendments: %w", err)
	}
	return count, nil
}
