package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
)

// topClassesLimit is the fixed size of the public leaderboard.
const topClassesLimit = 6

const topClassesCacheKey = "classes:top-six"

type classRepository interface {
	ListApproved(ctx context.Context) ([]models.Class, error)
	TopByEnrollment(ctx context.Context, limit int) ([]models.Class, error)
	ListByOwner(ctx context.Context, email string) ([]models.Class, error)
	FindByOwnerAndID(ctx context.Context, email, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	UpdateDetails(ctx context.Context, id, email, name, image string, price float64, seats int) (int64, error)
	UpdateModeration(ctx context.Context, id string, status models.ClassStatus, feedback string) (int64, error)
}

type classCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cacheObserver interface {
	RecordCacheOperation(hit bool)
}

// CreateClassRequest is the instructor payload posting a new class.
type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Email          string  `json:"email" validate:"required,email"`
	Price          float64 `json:"price" validate:"gte=0"`
	Seats          int     `json:"seats" validate:"gte=0"`
}

// UpdateClassRequest carries the instructor-editable field set.
type UpdateClassRequest struct {
	Name  string  `json:"name" validate:"required"`
	Image string  `json:"image"`
	Price float64 `json:"price" validate:"gte=0"`
	Seats int     `json:"seats" validate:"gte=0"`
}

// ModerateClassRequest carries the admin-editable field set.
type ModerateClassRequest struct {
	Status   models.ClassStatus `json:"status" validate:"required"`
	Feedback string             `json:"feedback"`
}

// ClassService covers the public catalog, the instructor's own classes, and
// admin moderation.
type ClassService struct {
	repo      classRepository
	cache     classCache
	cacheTTL  time.Duration
	metrics   cacheObserver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService. Both cache and metrics may be nil.
func NewClassService(repo classRepository, cache classCache, cacheTTL time.Duration, metrics cacheObserver, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, validator: validate, logger: logger}
}

// ListApproved returns the public catalog: approved classes only.
func (s *ClassService) ListApproved(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// TopSix returns the six approved classes with the most confirmed
// enrollments. Served from cache when fresh; checkout and moderation
// invalidate the entry.
func (s *ClassService) TopSix(ctx context.Context) ([]models.Class, error) {
	if s.cache != nil {
		var cached []models.Class
		err := s.cache.Get(ctx, topClassesCacheKey, &cached)
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(err == nil)
		}
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	classes, err := s.repo.TopByEnrollment(ctx, topClassesLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list top classes")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, topClassesCacheKey, classes, s.cacheTTL); err != nil {
			s.logger.Warn("leaderboard cache write failed", zap.Error(err))
		}
	}
	return classes, nil
}

// InvalidateLeaderboard drops the cached top-six entry. Called after any
// write that changes enrollment counts or approval status.
func (s *ClassService) InvalidateLeaderboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, topClassesCacheKey); err != nil {
		s.logger.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}

// Create posts a new class in pending status awaiting moderation.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class := &models.Class{
		Name:           req.Name,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		Email:          req.Email,
		Price:          req.Price,
		Seats:          req.Seats,
		Status:         models.ClassStatusPending,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}

// ListOwned returns an instructor's classes in every moderation state.
func (s *ClassService) ListOwned(ctx context.Context, email string) ([]models.Class, error) {
	classes, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list owned classes")
	}
	return classes, nil
}

// GetOwned returns a single class scoped to its owner. A missing record
// yields nil, preserving the lenient empty-body behavior clients expect.
func (s *ClassService) GetOwned(ctx context.Context, email, id string) (*models.Class, error) {
	class, err := s.repo.FindByOwnerAndID(ctx, email, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return class, nil
}

// UpdateDetails applies the instructor-editable fields to an owned class.
func (s *ClassService) UpdateDetails(ctx context.Context, id, email string, req UpdateClassRequest) (*models.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	matched, err := s.repo.UpdateDetails(ctx, id, email, req.Name, req.Image, req.Price, req.Seats)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
}

// Moderate applies the admin status/feedback decision to a class.
func (s *ClassService) Moderate(ctx context.Context, id string, req ModerateClassRequest) (*models.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid moderation payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown status")
	}
	matched, err := s.repo.UpdateModeration(ctx, id, req.Status, req.Feedback)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to moderate class")
	}
	s.InvalidateLeaderboard(ctx)
	return &models.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
}
