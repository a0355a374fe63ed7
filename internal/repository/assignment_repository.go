package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/onelearning/edusphere-api/internal/models"
)

// AssignmentRepository persists assignments and their course/student links.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Publish inserts the assignment row and both link sets in one transaction.
// Either every row commits or none become visible; the connection returns to
// the pool on every exit path.
func (r *AssignmentRepository) Publish(ctx context.Context, moduleID int64, courseIDs, studentIDs []int64) (assignmentID int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin publish transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertQuery = `INSERT INTO assignments (module_id) VALUES ($1) RETURNING id`
	if err = tx.QueryRowxContext(ctx, insertQuery, moduleID).Scan(&assignmentID); err != nil {
		return 0, fmt.Errorf("insert assignment: %w", err)
	}

	if err = bulkInsertLinks(ctx, tx, "assignment_courses", "course_id", assignmentID, courseIDs); err != nil {
		return 0, err
	}
	if err = bulkInsertLinks(ctx, tx, "assignment_students", "student_id", assignmentID, studentIDs); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit publish transaction: %w", err)
	}
	return assignmentID, nil
}

// bulkInsertLinks issues one multi-value insert for the whole id set. Empty
// sets are skipped: an assignment may target zero courses or zero students.
func bulkInsertLinks(ctx context.Context, tx *sqlx.Tx, table, column string, assignmentID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids)*2)
	for _, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, assignmentID, id)
	}

	query := fmt.Sprintf("INSERT INTO %s (assignment_id, %s) VALUES %s", table, column, strings.Join(placeholders, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s links: %w", table, err)
	}
	return nil
}

// ListByTopic returns one row per assignment under the module with its course
// ids aggregated into a comma-joined string, newest first.
func (r *AssignmentRepository) ListByTopic(ctx context.Context, topicID int64) ([]models.AssignmentSummary, error) {
	const query = `SELECT a.id AS assignment_id, a.module_id, a.created_at,
        STRING_AGG(ac.course_id::text, ',' ORDER BY ac.course_id) AS course_ids
        FROM assignments a
        LEFT JOIN assignment_courses ac ON a.id = ac.assignment_id
        WHERE a.module_id = $1
        GROUP BY a.id, a.module_id, a.created_at
        ORDER BY a.created_at DESC`
	summaries := []models.AssignmentSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, topicID); err != nil {
		return nil, fmt.Errorf("list assignments by topic: %w", err)
	}
	return summaries, nil
}

// ListTopicsForStudent returns the distinct topics that have at least one
// assignment targeting the student.
func (r *AssignmentRepository) ListTopicsForStudent(ctx context.Context, studentID int64) ([]models.Topic, error) {
	const query = `SELECT DISTINCT t.id, t.title, t.description
        FROM topics t
        JOIN assignments a ON t.id = a.module_id
        JOIN assignment_students ast ON a.id = ast.assignment_id
        WHERE ast.student_id = $1`
	topics := []models.Topic{}
	if err := r.db.SelectContext(ctx, &topics, query, studentID); err != nil {
		return nil, fmt.Errorf("list topics for student: %w", err)
	}
	return topics, nil
}

// ListCoursesForStudent traverses student -> assignment -> course within one
// module, de-duplicated since a student may sit in several assignments that
// reference the same course.
func (r *AssignmentRepository) ListCoursesForStudent(ctx context.Context, topicID, studentID int64) ([]models.Course, error) {
	const query = `SELECT DISTINCT c.id, c.title, c.description
        FROM assignments a
        JOIN assignment_students ast ON a.id = ast.assignment_id
        JOIN assignment_courses ac ON a.id = ac.assignment_id
        JOIN courses c ON ac.course_id = c.id
        WHERE a.module_id = $1 AND ast.student_id = $2`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, topicID, studentID); err != nil {
		return nil, fmt.Errorf("list courses for student: %w", err)
	}
	return courses, nil
}
