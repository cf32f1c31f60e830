package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/service"
	"github.com/remindengine/core/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthResultToDTO(t *testing.T) {
	userID := uuid.New()
	result := &service.AuthResult{
		User: &models.User{ID: userID, Email: "alice@example.com", DisplayName: "Alice"},
		Tokens: &jwt.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}

	out := authResultToDTO(result, 900)

	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.Equal(t, userID.String(), out.User.ID)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "Alice", out.User.DisplayName)
}

func TestAuthHandler_Me_ReadsContextWithoutServiceCall(t *testing.T) {
	h := NewAuthHandler(nil)
	userID := uuid.New()

	r := gin.New()
	r.GET("/me", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.EmailKey, "alice@example.com")
		h.Me(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "alice@example.com")
}
