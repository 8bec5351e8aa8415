package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

func classRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows([]string{"id", "name", "image", "instructor_name", "email", "price", "seats", "enrolled", "status", "feedback", "created_at", "updated_at"})
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func classRow(id, name string, enrolled int) []driver.Value {
	now := time.Now()
	return []driver.Value{id, name, "", "Sensei", "sensei@dojo.io", 99.99, 10, enrolled, "approved", "", now, now}
}

func TestClassRepositoryListApproved(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE status = $1 ORDER BY created_at")).
		WithArgs(models.ClassStatusApproved).
		WillReturnRows(classRows(classRow("cls-1", "Kendo", 3)))

	classes, err := repo.ListApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	require.Equal(t, "cls-1", classes[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryTopByEnrollment(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE status = $1 ORDER BY enrolled DESC LIMIT $2")).
		WithArgs(models.ClassStatusApproved, 6).
		WillReturnRows(classRows(classRow("cls-2", "Judo", 12), classRow("cls-1", "Kendo", 3)))

	classes, err := repo.TopByEnrollment(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	require.Equal(t, "cls-2", classes[0].ID)
	require.Equal(t, 12, classes[0].Enrolled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryCreateDefaultsPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classes")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	class := &models.Class{Name: "Aikido", Email: "sensei@dojo.io", Price: 50, Seats: 20}
	require.NoError(t, repo.Create(context.Background(), class))
	require.NotEmpty(t, class.ID)
	require.Equal(t, models.ClassStatusPending, class.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryUpdateDetailsScopedToOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET name = $3, image = $4, price = $5, seats = $6")).
		WithArgs("cls-1", "sensei@dojo.io", "Kendo II", "img", 120.0, 15, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateDetails(context.Background(), "cls-1", "sensei@dojo.io", "Kendo II", "img", 120.0, 15)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	// Wrong owner matches nothing.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET name = $3, image = $4, price = $5, seats = $6")).
		WithArgs("cls-1", "other@dojo.io", "Kendo II", "img", 120.0, 15, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.UpdateDetails(context.Background(), "cls-1", "other@dojo.io", "Kendo II", "img", 120.0, 15)
	require.NoError(t, err)
	require.Zero(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryUpdateModeration(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classes SET status = $2, feedback = $3")).
		WithArgs("cls-1", models.ClassStatusRejected, "needs a syllabus", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateModeration(context.Background(), "cls-1", models.ClassStatusRejected, "needs a syllabus")
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
