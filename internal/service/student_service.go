package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
)

// MsgAlreadyRegistered is returned to a duplicate registration. Exact text is
// part of the client contract.
const MsgAlreadyRegistered = "Already A registered Student"

type studentRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	CreateIfAbsent(ctx context.Context, student *models.Student) (bool, error)
	UpdateRole(ctx context.Context, id string, role models.StudentRole) (int64, error)
	HasRole(ctx context.Context, email string, role models.StudentRole) (bool, error)
}

// RegisterStudentRequest describes the self-service registration payload.
type RegisterStudentRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photoURL"`
}

// UpdateRoleRequest is the admin payload promoting or demoting a student.
type UpdateRoleRequest struct {
	Role models.StudentRole `json:"role" validate:"required"`
}

// StudentService covers registration, the admin roster, and role queries.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Register creates a student record on first sight of an email. The returned
// flag is false when the email was already registered, in which case no row
// was written and the existing record is returned.
func (s *StudentService) Register(ctx context.Context, req RegisterStudentRequest) (*models.Student, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	student := &models.Student{Email: req.Email, Name: req.Name, Photo: req.Photo, Role: models.RoleNone}
	created, err := s.repo.CreateIfAbsent(ctx, student)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register student")
	}
	if !created {
		existing, err := s.repo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
		}
		return existing, false, nil
	}
	return student, true, nil
}

// List returns every registered student for the admin roster.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// UpdateRole sets the role on a student record.
func (s *StudentService) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*models.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role payload")
	}
	if !req.Role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role")
	}
	matched, err := s.repo.UpdateRole(ctx, id, req.Role)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update role")
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
}

// HasRole reports whether the email holds the given role, reading the stored
// record fresh on every call.
func (s *StudentService) HasRole(ctx context.Context, email string, role models.StudentRole) (bool, error) {
	ok, err := s.repo.HasRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check role")
	}
	return ok, nil
}
