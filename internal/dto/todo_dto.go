package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// RecurrenceConfigRequest mirrors models.RecurrenceConfig for request binding.
type RecurrenceConfigRequest struct {
	Frequency  models.Frequency `json:"frequency" binding:"required,oneof=daily weekly monthly yearly custom"`
	Interval   int              `json:"interval"`
	DaysOfWeek []string         `json:"days_of_week,omitempty"`
	DayOfMonth *int             `json:"day_of_month,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
	EndCount   *int             `json:"end_count,omitempty"`
}

func (r RecurrenceConfigRequest) toModel() models.RecurrenceConfig {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	return models.RecurrenceConfig{
		Frequency:  r.Frequency,
		Interval:   interval,
		DaysOfWeek: r.DaysOfWeek,
		DayOfMonth: r.DayOfMonth,
		EndDate:    r.EndDate,
		EndCount:   r.EndCount,
	}
}

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Title       string                   `json:"title" binding:"required,max=500"`
	Description *string                  `json:"description,omitempty"`
	DueAt       *time.Time               `json:"due_at,omitempty"`
	Priority    *models.Priority         `json:"priority,omitempty"`
	Recurrence  *RecurrenceConfigRequest `json:"recurrence,omitempty"`
	TagIDs      []uuid.UUID              `json:"tag_ids,omitempty"`
}

func (r CreateTodoRequest) RecurrenceModel() *models.RecurrenceConfig {
	if r.Recurrence == nil {
		return nil
	}
	cfg := r.Recurrence.toModel()
	return &cfg
}

// UpdateTodoRequest is the patch body for PATCH /todos/{id}. Nil fields are
// left unchanged; edit_scope is carried as a query parameter, not here.
type UpdateTodoRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Completed   *bool            `json:"completed,omitempty"`
	DueAt       *time.Time       `json:"due_at,omitempty"`
	Priority    *models.Priority `json:"priority,omitempty"`
	TagIDs      []uuid.UUID      `json:"tag_ids,omitempty"`
}

// ListTodosQuery binds the query-string filters for GET /todos.
type ListTodosQuery struct {
	Search    string  `form:"search"`
	Status    string  `form:"status"`
	DueBefore *string `form:"due_before"`
	DueAfter  *string `form:"due_after"`
	Priority  string  `form:"priority"` // comma-separated ints
	TagIDs    string  `form:"tag_ids"`  // comma-separated uuids
	SortBy    string  `form:"sort_by"`
	SortDesc  bool    `form:"sort_desc"`
}

// TodoDTO represents a todo in responses.
type TodoDTO struct {
	ID                   uuid.UUID                `json:"id"`
	Title                string                   `json:"title"`
	Description          *string                  `json:"description,omitempty"`
	Completed            bool                     `json:"completed"`
	DueAt                *time.Time               `json:"due_at,omitempty"`
	Priority             models.Priority          `json:"priority"`
	IsRecurring          bool                     `json:"is_recurring"`
	Recurrence           *RecurrenceConfigRequest `json:"recurrence,omitempty"`
	RRule                *string                  `json:"rrule,omitempty"`
	RecurrenceEndDate    *time.Time               `json:"recurrence_end_date,omitempty"`
	OccurrencesGenerated int                      `json:"occurrences_generated"`
	Tags                 []TagDTO                 `json:"tags"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

func TodoToDTO(t *models.Todo) TodoDTO {
	dto := TodoDTO{
		ID:                   t.ID,
		Title:                t.Title,
		Description:          t.Description,
		Completed:            t.Completed,
		DueAt:                t.DueAt,
		Priority:             t.Priority,
		IsRecurring:          t.IsRecurring,
		RRule:                t.RRule,
		RecurrenceEndDate:    t.RecurrenceEndDate,
		OccurrencesGenerated: t.OccurrencesGenerated,
		Tags:                 TagsToDTO(t.Tags),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
	if t.RecurrenceConfig != nil {
		dto.Recurrence = &RecurrenceConfigRequest{
			Frequency:  t.RecurrenceConfig.Frequency,
			Interval:   t.RecurrenceConfig.Interval,
			DaysOfWeek: t.RecurrenceConfig.DaysOfWeek,
			DayOfMonth: t.RecurrenceConfig.DayOfMonth,
			EndDate:    t.RecurrenceConfig.EndDate,
			EndCount:   t.RecurrenceConfig.EndCount,
		}
	}
	return dto
}

func TodosToDTO(todos []models.Todo) []TodoDTO {
	dtos := make([]TodoDTO, len(todos))
	for i, t := range todos {
		dtos[i] = TodoToDTO(&t)
	}
	return dtos
}
