package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindengine/core/internal/models"
)

func TestCreateTodoRequest_RecurrenceModel_NilWhenUnset(t *testing.T) {
	req := CreateTodoRequest{Title: "task"}
	assert.Nil(t, req.RecurrenceModel())
}

func TestCreateTodoRequest_RecurrenceModel_DefaultsIntervalToOne(t *testing.T) {
	req := CreateTodoRequest{
		Title:      "task",
		Recurrence: &RecurrenceConfigRequest{Frequency: models.FrequencyDaily, Interval: 0},
	}

	cfg := req.RecurrenceModel()

	require.NotNil(t, cfg)
	assert.Equal(t, 1, cfg.Interval)
	assert.Equal(t, models.FrequencyDaily, cfg.Frequency)
}

func TestCreateTodoRequest_RecurrenceModel_PreservesExplicitInterval(t *testing.T) {
	req := CreateTodoRequest{
		Title:      "task",
		Recurrence: &RecurrenceConfigRequest{Frequency: models.FrequencyWeekly, Interval: 3},
	}

	cfg := req.RecurrenceModel()

	require.NotNil(t, cfg)
	assert.Equal(t, 3, cfg.Interval)
}

func TestTodoToDTO_MapsRecurrenceConfigWhenPresent(t *testing.T) {
	dom := 15
	todo := &models.Todo{
		ID:    uuid.New(),
		Title: "pay bill",
		RecurrenceConfig: &models.RecurrenceConfig{
			Frequency:  models.FrequencyMonthly,
			Interval:   1,
			DayOfMonth: &dom,
		},
	}

	out := TodoToDTO(todo)

	require.NotNil(t, out.Recurrence)
	assert.Equal(t, models.FrequencyMonthly, out.Recurrence.Frequency)
	require.NotNil(t, out.Recurrence.DayOfMonth)
	assert.Equal(t, dom, *out.Recurrence.DayOfMonth)
}

func TestTodoToDTO_NilRecurrenceWhenNotRecurring(t *testing.T) {
	todo := &models.Todo{ID: uuid.New(), Title: "one-off"}
	out := TodoToDTO(todo)
	assert.Nil(t, out.Recurrence)
}

func TestTodosToDTO_MapsEachTodo(t *testing.T) {
	todos := []models.Todo{
		{ID: uuid.New(), Title: "a"},
		{ID: uuid.New(), Title: "b"},
	}

	out := TodosToDTO(todos)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Title)
	assert.Equal(t, "b", out[1].Title)
}
