package models

import "time"

// Assignment records one publish event linking a topic (module) to sets of
// courses and students through its join rows.
type Assignment struct {
	ID        int64     `db:"id" json:"id"`
	ModuleID  int64     `db:"module_id" json:"module_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AssignmentSummary is the per-topic listing row: the assignment plus a
// comma-joined aggregate of its course ids. CourseIDs is nil when the
// assignment targets no courses.
type AssignmentSummary struct {
	AssignmentID int64     `db:"assignment_id" json:"assignmentId"`
	ModuleID     int64     `db:"module_id" json:"module_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	CourseIDs    *string   `db:"course_ids" json:"courseIds"`
}

// PublishAssignmentRequest carries the publish payload. The collections are
// pointers so a missing array is distinguishable from an empty one: empty is
// permitted, absent is a validation error.
type PublishAssignmentRequest struct {
	ModuleID         *int64   `json:"moduleId"`
	SelectedCourses  *[]int64 `json:"selectedCourses"`
	SelectedStudents *[]int64 `json:"selectedStudents"`
}
