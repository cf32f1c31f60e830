package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/remindengine/core/pkg/errors"
)

// Both of these checks in AuthService.Register short-circuit before the
// user store is touched, so a zero-value AuthService is enough.
func TestAuthService_Register_RejectsMalformedEmail(t *testing.T) {
	s := &AuthService{}

	_, err := s.Register(RegisterInput{Email: "not-an-email", Password: "longenoughpassword"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Message, "email")
}

func TestAuthService_Register_RejectsShortPassword(t *testing.T) {
	s := &AuthService{}

	_, err := s.Register(RegisterInput{Email: "alice@example.com", Password: "short"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Message, "8 characters")
}
