package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

const classColumns = `id, name, image, instructor_name, email, price, seats, enrolled, status, feedback, created_at, updated_at`

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListApproved returns every class that passed moderation.
func (r *ClassRepository) ListApproved(ctx context.Context) ([]models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE status = $1 ORDER BY created_at`, classColumns)
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, models.ClassStatusApproved); err != nil {
		return nil, fmt.Errorf("list approved classes: %w", err)
	}
	return classes, nil
}

// TopByEnrollment returns up to limit approved classes ordered by confirmed
// enrollments, highest first. Ties keep storage order.
func (r *ClassRepository) TopByEnrollment(ctx context.Context, limit int) ([]models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE status = $1 ORDER BY enrolled DESC LIMIT $2`, classColumns)
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, models.ClassStatusApproved, limit); err != nil {
		return nil, fmt.Errorf("list top classes: %w", err)
	}
	return classes, nil
}

// ListByOwner returns the classes an instructor has posted, in any status.
func (r *ClassRepository) ListByOwner(ctx context.Context, email string) ([]models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE email = $1 ORDER BY created_at`, classColumns)
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, email); err != nil {
		return nil, fmt.Errorf("list owned classes: %w", err)
	}
	return classes, nil
}

// FindByOwnerAndID returns a single class scoped to its owner.
func (r *ClassRepository) FindByOwnerAndID(ctx context.Context, email, id string) (*models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE email = $1 AND id = $2`, classColumns)
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, email, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// Create persists a class record.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.Status == "" {
		class.Status = models.ClassStatusPending
	}
	now := time.Now().UTC()
	if class.CreatedAt.IsZero() {
		class.CreatedAt = now
	}
	class.UpdatedAt = now

	const query = `INSERT INTO classes (id, name, image, instructor_name, email, price, seats, enrolled, status, feedback, created_at, updated_at)
        VALUES (:id, :name, :image, :instructor_name, :email, :price, :seats, :enrolled, :status, :feedback, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// UpdateDetails modifies the instructor-editable fields, scoped to the owner.
func (r *ClassRepository) UpdateDetails(ctx context.Context, id, email, name, image string, price float64, seats int) (int64, error) {
	const query = `UPDATE classes SET name = $3, image = $4, price = $5, seats = $6, updated_at = $7
        WHERE id = $1 AND email = $2`
	res, err := r.db.ExecContext(ctx, query, id, email, name, image, price, seats, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("update class details: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update class details rows: %w", err)
	}
	return rows, nil
}

// UpdateModeration sets the admin-editable status and feedback fields.
func (r *ClassRepository) UpdateModeration(ctx context.Context, id string, status models.ClassStatus, feedback string) (int64, error) {
	const query = `UPDATE classes SET status = $2, feedback = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, feedback, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("update class moderation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update class moderation rows: %w", err)
	}
	return rows, nil
}
