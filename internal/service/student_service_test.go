package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
)

type fakeStudentRepo struct {
	existing   *models.Student
	created    bool
	createErr  error
	listResult []models.Student
	roleRows   int64
	hasRole    bool
	hasRoleErr error

	lastRoleID string
	lastRole   models.StudentRole
}

func (f *fakeStudentRepo) FindByEmail(context.Context, string) (*models.Student, error) {
	if f.existing == nil {
		return nil, sql.ErrNoRows
	}
	return f.existing, nil
}

func (f *fakeStudentRepo) List(context.Context) ([]models.Student, error) {
	return f.listResult, nil
}

func (f *fakeStudentRepo) CreateIfAbsent(_ context.Context, student *models.Student) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	if f.created {
		student.ID = "stu-new"
	}
	return f.created, nil
}

func (f *fakeStudentRepo) UpdateRole(_ context.Context, id string, role models.StudentRole) (int64, error) {
	f.lastRoleID = id
	f.lastRole = role
	return f.roleRows, nil
}

func (f *fakeStudentRepo) HasRole(context.Context, string, models.StudentRole) (bool, error) {
	return f.hasRole, f.hasRoleErr
}

func TestStudentServiceRegisterCreates(t *testing.T) {
	repo := &fakeStudentRepo{created: true}
	svc := NewStudentService(repo, nil, nil)

	student, created, err := svc.Register(context.Background(), RegisterStudentRequest{Email: "kenji@dojo.io", Name: "Kenji"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "stu-new", student.ID)
	assert.Equal(t, models.RoleNone, student.Role)
}

func TestStudentServiceRegisterDuplicateReturnsExisting(t *testing.T) {
	repo := &fakeStudentRepo{created: false, existing: &models.Student{ID: "stu-1", Email: "kenji@dojo.io"}}
	svc := NewStudentService(repo, nil, nil)

	student, created, err := svc.Register(context.Background(), RegisterStudentRequest{Email: "kenji@dojo.io"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "stu-1", student.ID)
}

func TestStudentServiceRegisterValidatesEmail(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{}, nil, nil)

	_, _, err := svc.Register(context.Background(), RegisterStudentRequest{Email: "not-an-email"})
	require.Error(t, err)
}

func TestStudentServiceUpdateRole(t *testing.T) {
	repo := &fakeStudentRepo{roleRows: 1}
	svc := NewStudentService(repo, nil, nil)

	result, err := svc.UpdateRole(context.Background(), "stu-1", UpdateRoleRequest{Role: models.RoleInstructor})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	assert.Equal(t, "stu-1", repo.lastRoleID)
	assert.Equal(t, models.RoleInstructor, repo.lastRole)
}

func TestStudentServiceUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{}, nil, nil)

	_, err := svc.UpdateRole(context.Background(), "stu-1", UpdateRoleRequest{Role: "headmaster"})
	require.Error(t, err)
}

func TestStudentServiceHasRoleMissingRecord(t *testing.T) {
	repo := &fakeStudentRepo{hasRoleErr: sql.ErrNoRows}
	svc := NewStudentService(repo, nil, nil)

	ok, err := svc.HasRole(context.Background(), "ghost@dojo.io", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}
