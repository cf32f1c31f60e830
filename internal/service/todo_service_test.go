package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindengine/core/internal/models"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// Invariant I1: a recurring todo must carry a due date. The check runs
// before the todo is persisted, so a zero-value TodoService is enough.
func TestTodoService_CreateTodo_RejectsRecurringWithoutDueDate(t *testing.T) {
	s := &TodoService{}

	_, err := s.CreateTodo(uuid.New(), CreateTodoInput{
		Title:      "Water the plants",
		Recurrence: &models.RecurrenceConfig{Frequency: models.FrequencyDaily, Interval: 1},
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Message, "due_at")
}
