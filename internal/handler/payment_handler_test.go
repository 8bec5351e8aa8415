package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/repository"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
)

type fakeCheckoutStore struct {
	payments    []models.Payment
	result      *models.CheckoutResult
	checkoutErr error
}

func (f *fakeCheckoutStore) ListByEmail(context.Context, string) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *fakeCheckoutStore) Checkout(context.Context, *models.Payment) (*models.CheckoutResult, error) {
	return f.result, f.checkoutErr
}

type fakeIntenter struct {
	secret string
}

func (f *fakeIntenter) CreatePaymentIntent(context.Context, int64) (string, error) {
	return f.secret, nil
}

func newPaymentHandler(store *fakeCheckoutStore, intents *fakeIntenter) *PaymentHandler {
	return NewPaymentHandler(service.NewPaymentService(store, intents, nil, nil, nil))
}

func TestPaymentHandlerCreateIntent(t *testing.T) {
	h := newPaymentHandler(&fakeCheckoutStore{}, &fakeIntenter{secret: "pi_secret"})

	c, rec := testContext(t, http.MethodPost, "/payment-intent", `{"price":19.99}`)
	h.CreateIntent(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, rec.Body.String())
}

func TestPaymentHandlerCheckoutConflict(t *testing.T) {
	h := newPaymentHandler(&fakeCheckoutStore{checkoutErr: repository.ErrAlreadyEnrolled}, &fakeIntenter{})

	c, rec := testContext(t, http.MethodPost, "/payments", `{"email":"kenji@dojo.io","price":99.99,"courseId":"cls-1","takenCourse":"tc-1"}`)
	asUser(c, "kenji@dojo.io")
	h.Checkout(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"course is already enrolled"}`, rec.Body.String())
}

func TestPaymentHandlerCheckoutSucceeds(t *testing.T) {
	store := &fakeCheckoutStore{result: &models.CheckoutResult{
		InsertResult:       models.InsertResult{Acknowledged: true, InsertedID: "pay-1"},
		ChangeEnrollStatus: models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
		UpdateSeats:        models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
	}}
	h := newPaymentHandler(store, &fakeIntenter{})

	c, rec := testContext(t, http.MethodPost, "/payments", `{"email":"kenji@dojo.io","price":99.99,"courseId":"cls-1","takenCourse":"tc-1"}`)
	asUser(c, "kenji@dojo.io")
	h.Checkout(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertResult"`)
	assert.Contains(t, rec.Body.String(), `"pay-1"`)
}

func TestPaymentHandlerHistoryMissingEmail(t *testing.T) {
	h := newPaymentHandler(&fakeCheckoutStore{payments: []models.Payment{{ID: "pay-1"}}}, &fakeIntenter{})

	c, rec := testContext(t, http.MethodGet, "/payments", "")
	asUser(c, "kenji@dojo.io")
	h.History(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPaymentHandlerHistoryMismatch(t *testing.T) {
	h := newPaymentHandler(&fakeCheckoutStore{}, &fakeIntenter{})

	c, rec := testContext(t, http.MethodGet, "/payments?email=other@dojo.io", "")
	asUser(c, "kenji@dojo.io")
	h.History(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"unauthorize access"}`, rec.Body.String())
}

func TestPaymentHandlerExportCSV(t *testing.T) {
	store := &fakeCheckoutStore{payments: []models.Payment{{
		Email:     "kenji@dojo.io",
		Amount:    99.99,
		Date:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CourseID:  "cls-1",
		ClassName: "Kendo",
	}}}
	h := newPaymentHandler(store, &fakeIntenter{})

	c, rec := testContext(t, http.MethodGet, "/payments/export?email=kenji@dojo.io", "")
	asUser(c, "kenji@dojo.io")
	h.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=payments.csv", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Kendo")
}
