package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// CreateReminderRequest is the request body for POST /todos/{id}/reminders.
// Exactly one of FireAt or OffsetMinutes must be set (invariant I3).
type CreateReminderRequest struct {
	OccurrenceID  *uuid.UUID `json:"occurrence_id,omitempty"`
	FireAt        *time.Time `json:"fire_at,omitempty"`
	OffsetMinutes *int       `json:"offset_minutes,omitempty"`
}

// SnoozeReminderRequest is the request body for POST /reminders/{id}/snooze.
type SnoozeReminderRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1,max=10080"`
}

// ReminderDTO represents a reminder in responses.
type ReminderDTO struct {
	ID            uuid.UUID              `json:"id"`
	TodoID        uuid.UUID              `json:"todo_id"`
	OccurrenceID  *uuid.UUID             `json:"occurrence_id,omitempty"`
	FireAt        time.Time              `json:"fire_at"`
	OffsetMinutes *int                   `json:"offset_minutes,omitempty"`
	Status        models.ReminderStatus  `json:"status"`
	SentAt        *time.Time             `json:"sent_at,omitempty"`
	SnoozedUntil  *time.Time             `json:"snoozed_until,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

func ReminderToDTO(r *models.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:            r.ID,
		TodoID:        r.TodoID,
		OccurrenceID:  r.OccurrenceID,
		FireAt:        r.FireAt,
		OffsetMinutes: r.OffsetMinutes,
		Status:        r.Status,
		SentAt:        r.SentAt,
		SnoozedUntil:  r.SnoozedUntil,
		CreatedAt:     r.CreatedAt,
	}
}

func RemindersToDTO(reminders []models.Reminder) []ReminderDTO {
	dtos := make([]ReminderDTO, len(reminders))
	for i, r := range reminders {
		dtos[i] = ReminderToDTO(&r)
	}
	return dtos
}
