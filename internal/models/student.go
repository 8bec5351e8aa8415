package models

import "time"

// StudentRole is the access level stored on a student record.
type StudentRole string

const (
	RoleNone       StudentRole = "none"
	RoleAdmin      StudentRole = "admin"
	RoleInstructor StudentRole = "instructor"
)

// Valid reports whether the role is one of the known levels.
func (r StudentRole) Valid() bool {
	switch r {
	case RoleNone, RoleAdmin, RoleInstructor:
		return true
	}
	return false
}

// Student is a registered user. Email is the registration key; role is "none"
// until an admin promotes the record. JSON field names keep the shape the web
// client already consumes.
type Student struct {
	ID        string      `db:"id" json:"_id"`
	Email     string      `db:"email" json:"email"`
	Name      string      `db:"name" json:"name,omitempty"`
	Photo     string      `db:"photo" json:"photoURL,omitempty"`
	Role      StudentRole `db:"role" json:"role"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}
