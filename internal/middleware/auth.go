package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/remindengine/core/pkg/errors"
	"github.com/remindengine/core/pkg/jwt"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	UserIDKey           = "user_id"
	EmailKey            = "email"
)

// AuthMiddleware validates a bearer JWT and sets the caller's identity in
// context, grounded on the teacher's middleware/auth.go unchanged in
// function (only the error payload shape changed).
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abortWithAppError(c, apperrors.ErrAuthenticationRequired)
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortWithAppError(c, apperrors.ErrInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				abortWithAppError(c, apperrors.ErrTokenExpired)
				return
			}
			abortWithAppError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.Error(appErr)
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error":      appErr.Code,
		"message":    appErr.Message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": RequestID(c),
	})
}

// GetUserID extracts the authenticated user's id from context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// MustGetUserID extracts the user id or panics; only safe behind
// AuthMiddleware.
func MustGetUserID(c *gin.Context) uuid.UUID {
	id, ok := GetUserID(c)
	if !ok {
		panic("user_id not found in context")
	}
	return id
}
