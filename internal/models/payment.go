package models

import "time"

// Payment is an append-only checkout record. TakenCourse references the
// pending-list row the checkout confirmed; CourseID the class whose seats it
// consumed. Rows are never mutated or deleted.
type Payment struct {
	ID            string    `db:"id" json:"_id"`
	Email         string    `db:"email" json:"email"`
	Amount        float64   `db:"amount" json:"amount"`
	TransactionID string    `db:"transaction_id" json:"transactionId,omitempty"`
	Date          time.Time `db:"date" json:"date"`
	CourseID      string    `db:"course_id" json:"courseId"`
	TakenCourse   string    `db:"taken_course" json:"takenCourse"`
	ClassName     string    `db:"class_name" json:"className,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
