package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bushido-bootcamp/enroll-api/internal/service"
)

func newAuthService() *service.AuthService {
	return service.NewAuthService(nil, nil, service.AuthConfig{Secret: "test-secret"})
}

func protectedRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(auth), func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := protectedRouter(newAuthService())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, rec.Body.String())
}

func TestJWTMalformedHeader(t *testing.T) {
	r := protectedRouter(newAuthService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTGarbageToken(t *testing.T) {
	r := protectedRouter(newAuthService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, rec.Body.String())
}

func TestJWTValidTokenPasses(t *testing.T) {
	auth := newAuthService()
	r := protectedRouter(auth)

	token, err := auth.IssueToken(service.TokenRequest{Email: "kenji@dojo.io"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"kenji@dojo.io"}`, rec.Body.String())
}
