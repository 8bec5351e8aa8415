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

func TestTakenCourseRepositoryCreateIfAbsent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTakenCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO taken_courses")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.TakenCourse{CourseID: "cls-1", Email: "kenji@dojo.io", ClassName: "Kendo", Price: 99.99}
	created, err := repo.CreateIfAbsent(context.Background(), item)
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, item.ID)
	require.Equal(t, models.EnrollStateNone, item.Enrolled)

	// Same pair again: the unique index swallows the insert.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO taken_courses")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err = repo.CreateIfAbsent(context.Background(), &models.TakenCourse{CourseID: "cls-1", Email: "kenji@dojo.io"})
	require.NoError(t, err)
	require.False(t, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTakenCourseRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTakenCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM taken_courses WHERE id = $1")).
		WithArgs("tc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Delete(context.Background(), "tc-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTakenCourseRepositoryListByEmailAndState(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTakenCourseRepository(db)
	rows := sqlmock.NewRows([]string{"id", "course_id", "email", "class_name", "image", "price", "enrolled", "added_at"}).
		AddRow("tc-1", "cls-1", "kenji@dojo.io", "Kendo", "", 99.99, "none", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM taken_courses WHERE email = $1 AND enrolled = $2")).
		WithArgs("kenji@dojo.io", models.EnrollStateNone).
		WillReturnRows(rows)

	items, err := repo.ListByEmailAndState(context.Background(), "kenji@dojo.io", models.EnrollStateNone)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, models.EnrollStateNone, items[0].Enrolled)
	require.NoError(t, mock.ExpectationsWereMet())
}
