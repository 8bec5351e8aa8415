package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByEmail returns the student registered under the given email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	const query = `SELECT id, email, name, photo, role, created_at FROM students WHERE email = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns every registered student.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, email, name, photo, role, created_at FROM students ORDER BY created_at`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// CreateIfAbsent inserts the student unless the email is already registered.
// The unique index on email makes the dedup atomic; the returned flag reports
// whether a row was actually inserted.
func (r *StudentRepository) CreateIfAbsent(ctx context.Context, student *models.Student) (bool, error) {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.Role == "" {
		student.Role = models.RoleNone
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO students (id, email, name, photo, role, created_at)
        VALUES (:id, :email, :name, :photo, :role, :created_at)
        ON CONFLICT (email) DO NOTHING`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return false, fmt.Errorf("create student: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create student rows: %w", err)
	}
	return inserted > 0, nil
}

// UpdateRole sets the role on a student record, returning matched rows.
func (r *StudentRepository) UpdateRole(ctx context.Context, id string, role models.StudentRole) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE students SET role = $2 WHERE id = $1`, id, role)
	if err != nil {
		return 0, fmt.Errorf("update student role: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update student role rows: %w", err)
	}
	return rows, nil
}

// HasRole reports whether the email belongs to a student holding the role.
// Guards call this on every protected request; role changes take effect
// without any token refresh.
func (r *StudentRepository) HasRole(ctx context.Context, email string, role models.StudentRole) (bool, error) {
	const query = `SELECT COUNT(*) FROM students WHERE email = $1 AND role = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, email, role); err != nil {
		return false, fmt.Errorf("check student role: %w", err)
	}
	return count > 0, nil
}
