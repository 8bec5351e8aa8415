package models

import "time"

// ClassStatus is the moderation state of an offered class.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusRejected ClassStatus = "rejected"
)

// Valid reports whether the status is a known moderation state.
func (s ClassStatus) Valid() bool {
	switch s {
	case ClassStatusPending, ClassStatusApproved, ClassStatusRejected:
		return true
	}
	return false
}

// Class is an offered course. Email is the owning instructor's address. Seats
// counts remaining capacity and Enrolled the confirmed checkouts; both move
// together, exactly once per successful checkout.
type Class struct {
	ID             string      `db:"id" json:"_id"`
	Name           string      `db:"name" json:"name"`
	Image          string      `db:"image" json:"image"`
	InstructorName string      `db:"instructor_name" json:"instructorName,omitempty"`
	Email          string      `db:"email" json:"email"`
	Price          float64     `db:"price" json:"price"`
	Seats          int         `db:"seats" json:"seats"`
	Enrolled       int         `db:"enrolled" json:"enrolled"`
	Status         ClassStatus `db:"status" json:"status"`
	Feedback       string      `db:"feedback" json:"feedback,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}
