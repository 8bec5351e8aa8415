package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

// Checkout failure modes the service layer maps to client responses.
var (
	// ErrAlreadyEnrolled means the taken-course row was missing or had left
	// the "none" state, so the enrollment transition matched nothing.
	ErrAlreadyEnrolled = errors.New("taken course is not pending")
	// ErrNoSeats means the class was missing or sold out, so the conditional
	// seat decrement matched nothing.
	ErrNoSeats = errors.New("class has no seats available")
)

// PaymentRepository handles the append-only payment history and the checkout
// transaction that finalizes an enrollment.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository constructs the repository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListByEmail returns a student's payments, most recent first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	const query = `SELECT id, email, amount, transaction_id, date, course_id, taken_course, class_name, created_at
        FROM payments WHERE email = $1 ORDER BY date DESC`
	payments := []models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, email); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// Checkout performs the three dependent writes as one transaction: insert the
// payment row, move the taken-course row none -> enrolled, and take one seat
// on the class. Both updates are conditional; if either matches no row the
// whole transaction rolls back, so a rejected checkout leaves no payment
// record behind.
func (r *PaymentRepository) Checkout(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertQuery = `INSERT INTO payments (id, email, amount, transaction_id, date, course_id, taken_course, class_name, created_at)
        VALUES (:id, :email, :amount, :transaction_id, :date, :course_id, :taken_course, :class_name, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insertQuery, payment); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	const enrollQuery = `UPDATE taken_courses SET enrolled = $2 WHERE id = $1 AND enrolled = $3`
	enrollRes, err := tx.ExecContext(ctx, enrollQuery, payment.TakenCourse, models.EnrollStateEnrolled, models.EnrollStateNone)
	if err != nil {
		return nil, fmt.Errorf("mark taken course enrolled: %w", err)
	}
	enrolled, err := enrollRes.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("mark taken course enrolled rows: %w", err)
	}
	if enrolled == 0 {
		return nil, ErrAlreadyEnrolled
	}

	const seatQuery = `UPDATE classes SET seats = seats - 1, enrolled = enrolled + 1, updated_at = $2
        WHERE id = $1 AND seats > 0`
	seatRes, err := tx.ExecContext(ctx, seatQuery, payment.CourseID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update class seats: %w", err)
	}
	seats, err := seatRes.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update class seats rows: %w", err)
	}
	if seats == 0 {
		return nil, ErrNoSeats
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	return &models.CheckoutResult{
		InsertResult:       models.InsertResult{Acknowledged: true, InsertedID: payment.ID},
		ChangeEnrollStatus: models.UpdateResult{Acknowledged: true, MatchedCount: enrolled, ModifiedCount: enrolled},
		UpdateSeats:        models.UpdateResult{Acknowledged: true, MatchedCount: seats, ModifiedCount: seats},
	}, nil
}
