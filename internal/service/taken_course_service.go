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

// MsgCourseAlreadyAdded is returned when a (course, email) pair is added a
// second time. Exact text is part of the client contract.
const MsgCourseAlreadyAdded = "This course is already added"

type takenCourseRepository interface {
	CreateIfAbsent(ctx context.Context, item *models.TakenCourse) (bool, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListByEmailAndState(ctx context.Context, email string, state models.EnrollState) ([]models.TakenCourse, error)
	FindByEmailAndID(ctx context.Context, email, id string) (*models.TakenCourse, error)
}

// AddTakenCourseRequest is the payload adding a class to the pending list.
type AddTakenCourseRequest struct {
	CourseID  string  `json:"courseId" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	ClassName string  `json:"className"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// TakenCourseService manages the pending list: cart adds, removals, and the
// per-student views split by enrollment state.
type TakenCourseService struct {
	repo      takenCourseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTakenCourseService constructs TakenCourseService.
func NewTakenCourseService(repo takenCourseRepository, validate *validator.Validate, logger *zap.Logger) *TakenCourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TakenCourseService{repo: repo, validator: validate, logger: logger}
}

// Add puts a class on the student's pending list. The returned flag is false
// when the pair already existed, in which case nothing was written.
func (s *TakenCourseService) Add(ctx context.Context, req AddTakenCourseRequest) (*models.TakenCourse, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid taken course payload")
	}
	item := &models.TakenCourse{
		CourseID:  req.CourseID,
		Email:     req.Email,
		ClassName: req.ClassName,
		Image:     req.Image,
		Price:     req.Price,
		Enrolled:  models.EnrollStateNone,
	}
	created, err := s.repo.CreateIfAbsent(ctx, item)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add taken course")
	}
	return item, created, nil
}

// Remove deletes a row from the pending list.
func (s *TakenCourseService) Remove(ctx context.Context, id string) (*models.DeleteResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove taken course")
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// ListPending returns the student's rows still awaiting checkout.
func (s *TakenCourseService) ListPending(ctx context.Context, email string) ([]models.TakenCourse, error) {
	return s.listByState(ctx, email, models.EnrollStateNone)
}

// ListEnrolled returns the student's confirmed rows.
func (s *TakenCourseService) ListEnrolled(ctx context.Context, email string) ([]models.TakenCourse, error) {
	return s.listByState(ctx, email, models.EnrollStateEnrolled)
}

func (s *TakenCourseService) listByState(ctx context.Context, email string, state models.EnrollState) ([]models.TakenCourse, error) {
	items, err := s.repo.ListByEmailAndState(ctx, email, state)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list taken courses")
	}
	return items, nil
}

// Get returns one row scoped to its owner; a missing record yields nil,
// preserving the lenient empty-body behavior.
func (s *TakenCourseService) Get(ctx context.Context, email, id string) (*models.TakenCourse, error) {
	item, err := s.repo.FindByEmailAndID(ctx, email, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load taken course")
	}
	return item, nil
}
