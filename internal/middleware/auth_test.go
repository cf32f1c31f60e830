package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindengine/core/pkg/jwt"
)

func newAuthRouter(jwtManager *jwt.Manager) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(AuthMiddleware(jwtManager))
	r.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, MustGetUserID(c).String())
	})
	return r
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	jwtManager := jwt.NewManager("a-very-long-test-secret-key-1234567890")
	r := newAuthRouter(jwtManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	jwtManager := jwt.NewManager("a-very-long-test-secret-key-1234567890")
	r := newAuthRouter(jwtManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, "Basic somevalue")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RejectsForeignSignature(t *testing.T) {
	jwtManager := jwt.NewManager("a-very-long-test-secret-key-1234567890")
	otherManager := jwt.NewManager("a-different-test-secret-key-0987654321")
	pair, err := otherManager.GenerateTokenPair(uuid.New(), "eve@example.com")
	require.NoError(t, err)

	r := newAuthRouter(jwtManager)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	jwtManager := jwt.NewManager("a-very-long-test-secret-key-1234567890")
	userID := uuid.New()
	pair, err := jwtManager.GenerateTokenPair(userID, "alice@example.com")
	require.NoError(t, err)

	r := newAuthRouter(jwtManager)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestMustGetUserID_PanicsWithoutContext(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Panics(t, func() { MustGetUserID(c) })
}

func TestGetUserID_FalseWhenAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
