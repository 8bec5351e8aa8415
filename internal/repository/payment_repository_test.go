package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

func TestPaymentRepositoryListByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPaymentRepository(db)
	rows := sqlmock.NewRows([]string{"id", "email", "amount", "transaction_id", "date", "course_id", "taken_course", "class_name", "created_at"}).
		AddRow("pay-1", "kenji@dojo.io", 99.99, "txn_1", time.Now(), "cls-1", "tc-1", "Kendo", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE email = $1 ORDER BY date DESC")).
		WithArgs("kenji@dojo.io").
		WillReturnRows(rows)

	payments, err := repo.ListByEmail(context.Background(), "kenji@dojo.io")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, "pay-1", payments[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepositoryCheckoutCommits(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE taken_courses SET enrolled = $2 WHERE id = $1 AND enrolled = $3")).
		WithArgs("tc-1", models.EnrollStateEnrolled, models.EnrollStateNone).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET seats = seats - 1, enrolled = enrolled + 1")).
		WithArgs("cls-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment := &models.Payment{
		Email:       "kenji@dojo.io",
		Amount:      99.99,
		CourseID:    "cls-1",
		TakenCourse: "tc-1",
	}
	result, err := repo.Checkout(context.Background(), payment)
	require.NoError(t, err)
	require.True(t, result.InsertResult.Acknowledged)
	require.Equal(t, payment.ID, result.InsertResult.InsertedID)
	require.Equal(t, int64(1), result.ChangeEnrollStatus.ModifiedCount)
	require.Equal(t, int64(1), result.UpdateSeats.ModifiedCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepositoryCheckoutReplayRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPaymentRepository(db)

	// The taken-course row already left "none": the conditional update matches
	// nothing and the payment insert must roll back with it.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE taken_courses SET enrolled = $2 WHERE id = $1 AND enrolled = $3")).
		WithArgs("tc-1", models.EnrollStateEnrolled, models.EnrollStateNone).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Checkout(context.Background(), &models.Payment{
		Email: "kenji@dojo.io", CourseID: "cls-1", TakenCourse: "tc-1",
	})
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepositoryCheckoutSoldOutRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE taken_courses SET enrolled = $2 WHERE id = $1 AND enrolled = $3")).
		WithArgs("tc-1", models.EnrollStateEnrolled, models.EnrollStateNone).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET seats = seats - 1, enrolled = enrolled + 1")).
		WithArgs("cls-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Checkout(context.Background(), &models.Payment{
		Email: "kenji@dojo.io", CourseID: "cls-1", TakenCourse: "tc-1",
	})
	require.ErrorIs(t, err, ErrNoSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}
