package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/repository"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/export"
)

type checkoutStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Checkout(ctx context.Context, payment *models.Payment) (*models.CheckoutResult, error)
}

type paymentIntenter interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type leaderboardInvalidator interface {
	InvalidateLeaderboard(ctx context.Context)
}

// PaymentIntentRequest is the /payment-intent payload.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CheckoutRequest is the /payments payload finalizing an enrollment.
type CheckoutRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Amount        float64 `json:"amount"`
	Price         float64 `json:"price"`
	TransactionID string  `json:"transactionId"`
	Date          string  `json:"date"`
	CourseID      string  `json:"courseId" validate:"required"`
	TakenCourse   string  `json:"takenCourse" validate:"required"`
	ClassName     string  `json:"className"`
}

// PaymentService covers intent creation, the checkout flow, the payment
// history, and history exports.
type PaymentService struct {
	store       checkoutStore
	intents     paymentIntenter
	leaderboard leaderboardInvalidator
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewPaymentService constructs PaymentService.
func NewPaymentService(store checkoutStore, intents paymentIntenter, leaderboard leaderboardInvalidator, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{store: store, intents: intents, leaderboard: leaderboard, validator: validate, logger: logger}
}

// CreateIntent pre-authorizes a charge for the given price and returns the
// processor's client secret. The price converts to minor units (price x 100).
func (s *PaymentService) CreateIntent(ctx context.Context, req PaymentIntentRequest) (string, error) {
	amount := int64(math.Round(req.Price * 100))
	secret, err := s.intents.CreatePaymentIntent(ctx, amount)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create payment intent")
	}
	return secret, nil
}

// Checkout records the payment and finalizes the enrollment in one
// transaction: payment row inserted, taken-course row moved to "enrolled",
// one seat consumed on the class. A row already enrolled or a sold-out class
// rejects the whole checkout with 409.
func (s *PaymentService) Checkout(ctx context.Context, req CheckoutRequest) (*models.CheckoutResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}

	amount := req.Amount
	if amount == 0 {
		amount = req.Price
	}
	payment := &models.Payment{
		Email:         req.Email,
		Amount:        amount,
		TransactionID: req.TransactionID,
		CourseID:      req.CourseID,
		TakenCourse:   req.TakenCourse,
		ClassName:     req.ClassName,
	}
	if req.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Date); err == nil {
			payment.Date = parsed
		}
	}

	result, err := s.store.Checkout(ctx, payment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			return nil, appErrors.Clone(appErrors.ErrConflict, "course is already enrolled")
		case errors.Is(err, repository.ErrNoSeats):
			return nil, appErrors.Clone(appErrors.ErrConflict, "no seats available")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "checkout failed")
	}

	if s.leaderboard != nil {
		s.leaderboard.InvalidateLeaderboard(ctx)
	}
	s.logger.Info("checkout completed",
		zap.String("email", req.Email),
		zap.String("course_id", req.CourseID),
		zap.String("taken_course", req.TakenCourse),
	)
	return result, nil
}

// History returns the student's payments, most recent first.
func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// ExportHistory renders the student's payment history as a CSV or PDF
// download, returning the document bytes and their content type.
func (s *PaymentService) ExportHistory(ctx context.Context, email, format string) ([]byte, string, error) {
	payments, err := s.History(ctx, email)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Class", "Course ID", "Transaction", "Amount"},
	}
	for _, p := range payments {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":        p.Date.UTC().Format("2006-01-02 15:04"),
			"Class":       p.ClassName,
			"Course ID":   p.CourseID,
			"Transaction": p.TransactionID,
			"Amount":      fmt.Sprintf("%.2f", p.Amount),
		})
	}

	switch format {
	case "pdf":
		doc, err := export.PDF(dataset, "Payment History")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return doc, "application/pdf", nil
	case "", "csv":
		doc, err := export.CSV(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return doc, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
