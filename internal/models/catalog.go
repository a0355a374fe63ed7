package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Topic is a static catalog entry; courses hang off it.
type Topic struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
}

// Course is a catalog course under a topic.
type Course struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
}

// CourseWithTopic is the denormalized module listing: course fields plus the
// owning topic's title and description.
type CourseWithTopic struct {
	ID               int64  `db:"id" json:"id"`
	TopicID          int64  `db:"topic_id" json:"topic_id"`
	Title            string `db:"title" json:"title"`
	Description      string `db:"description" json:"description"`
	TopicTitle       string `db:"topic_title" json:"topic_title"`
	TopicDescription string `db:"topic_description" json:"topic_description"`
}

// CourseOverview is the one-to-one structured companion of a course.
type CourseOverview struct {
	CourseID   int64          `db:"course_id" json:"course_id"`
	Objectives types.JSONText `db:"objectives" json:"objectives"`
	Structure  types.JSONText `db:"structure" json:"structure"`
	Details    types.JSONText `db:"details" json:"details"`
}

// Case is a clinical teaching case from the cases catalog.
type Case struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
