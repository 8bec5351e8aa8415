package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

const takenCourseColumns = `id, course_id, email, class_name, image, price, enrolled, added_at`

// TakenCourseRepository handles persistence of the pending/confirmed course
// list ("taken courses").
type TakenCourseRepository struct {
	db *sqlx.DB
}

// NewTakenCourseRepository constructs the repository.
func NewTakenCourseRepository(db *sqlx.DB) *TakenCourseRepository {
	return &TakenCourseRepository{db: db}
}

// CreateIfAbsent inserts the row unless the (course, email) pair already
// exists. The unique index makes the dedup atomic under concurrent adds.
func (r *TakenCourseRepository) CreateIfAbsent(ctx context.Context, item *models.TakenCourse) (bool, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Enrolled == "" {
		item.Enrolled = models.EnrollStateNone
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	const query = `INSERT INTO taken_courses (id, course_id, email, class_name, image, price, enrolled, added_at)
        VALUES (:id, :course_id, :email, :class_name, :image, :price, :enrolled, :added_at)
        ON CONFLICT (course_id, email) DO NOTHING`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return false, fmt.Errorf("create taken course: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create taken course rows: %w", err)
	}
	return inserted > 0, nil
}

// Delete removes a row from the pending list, returning deleted rows.
func (r *TakenCourseRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM taken_courses WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete taken course: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete taken course rows: %w", err)
	}
	return rows, nil
}

// ListByEmailAndState returns a student's rows in the given enrollment state.
func (r *TakenCourseRepository) ListByEmailAndState(ctx context.Context, email string, state models.EnrollState) ([]models.TakenCourse, error) {
	query := fmt.Sprintf(`SELECT %s FROM taken_courses WHERE email = $1 AND enrolled = $2 ORDER BY added_at`, takenCourseColumns)
	items := []models.TakenCourse{}
	if err := r.db.SelectContext(ctx, &items, query, email, state); err != nil {
		return nil, fmt.Errorf("list taken courses: %w", err)
	}
	return items, nil
}

// FindByEmailAndID returns a single row scoped to its owner.
func (r *TakenCourseRepository) FindByEmailAndID(ctx context.Context, email, id string) (*models.TakenCourse, error) {
	query := fmt.Sprintf(`SELECT %s FROM taken_courses WHERE email = $1 AND id = $2`, takenCourseColumns)
	var item models.TakenCourse
	if err := r.db.GetContext(ctx, &item, query, email, id); err != nil {
		return nil, err
	}
	return &item, nil
}
