package models

import "time"

// EnrollState tracks a taken course from cart to confirmed enrollment. The
// state only moves forward; nothing reverses "enrolled".
type EnrollState string

const (
	EnrollStateNone     EnrollState = "none"
	EnrollStateEnrolled EnrollState = "enrolled"
)

// TakenCourse links a student (by email) to a class they added to their
// pending list. The (CourseID, Email) pair is unique; a second add is rejected
// rather than merged. Denormalized class fields travel with the row so list
// views render without a join, matching the documents the old store held.
type TakenCourse struct {
	ID        string      `db:"id" json:"_id"`
	CourseID  string      `db:"course_id" json:"courseId"`
	Email     string      `db:"email" json:"email"`
	ClassName string      `db:"class_name" json:"className,omitempty"`
	Image     string      `db:"image" json:"image,omitempty"`
	Price     float64     `db:"price" json:"price"`
	Enrolled  EnrollState `db:"enrolled" json:"enrolled"`
	AddedAt   time.Time   `db:"added_at" json:"addedAt"`
}
