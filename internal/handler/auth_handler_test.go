package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bushido-bootcamp/enroll-api/internal/service"
)

func TestAuthHandlerIssueToken(t *testing.T) {
	authSvc := service.NewAuthService(nil, nil, service.AuthConfig{Secret: "test-secret"})
	h := NewAuthHandler(authSvc)

	c, rec := testContext(t, http.MethodPost, "/jwt", `{"email":"kenji@dojo.io","name":"Kenji"}`)
	h.IssueToken(c)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := authSvc.ValidateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "kenji@dojo.io", claims.Email)
}

func TestAuthHandlerIssueTokenRejectsBadPayload(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService(nil, nil, service.AuthConfig{Secret: "test-secret"}))

	c, rec := testContext(t, http.MethodPost, "/jwt", `{"email":`)
	h.IssueToken(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"invalid request body"}`, rec.Body.String())
}

func TestAuthHandlerIssueTokenRequiresEmail(t *testing.T) {
	h := NewAuthHandler(service.NewAuthService(nil, nil, service.AuthConfig{Secret: "test-secret"}))

	c, rec := testContext(t, http.MethodPost, "/jwt", `{"name":"no email"}`)
	h.IssueToken(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
