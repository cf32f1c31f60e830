package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/remindengine/core/pkg/errors"
)

// Invariant I3: exactly one of FireAt/OffsetMinutes must be set. Both
// branches of the XOR check are rejected before any repository is touched,
// so a zero-value ReminderService is enough to exercise them.
func TestReminderService_CreateReminder_RejectsNeitherFireAtNorOffset(t *testing.T) {
	s := &ReminderService{}

	_, err := s.CreateReminder(uuid.New(), uuid.New(), CreateReminderInput{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
}

func TestReminderService_CreateReminder_RejectsBothFireAtAndOffset(t *testing.T) {
	s := &ReminderService{}
	now := time.Now()
	offset := 30

	_, err := s.CreateReminder(uuid.New(), uuid.New(), CreateReminderInput{
		FireAt:        &now,
		OffsetMinutes: &offset,
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
}
