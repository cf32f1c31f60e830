package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// NotificationDTO represents a notification in responses.
type NotificationDTO struct {
	ID         uuid.UUID               `json:"id"`
	Kind       models.NotificationKind `json:"kind"`
	Title      string                  `json:"title"`
	Body       *string                 `json:"body,omitempty"`
	TodoID     *uuid.UUID              `json:"todo_id,omitempty"`
	ReminderID *uuid.UUID              `json:"reminder_id,omitempty"`
	Read       bool                    `json:"read"`
	CreatedAt  time.Time               `json:"created_at"`
}

func NotificationToDTO(n *models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID,
		Kind:       n.Kind,
		Title:      n.Title,
		Body:       n.Body,
		TodoID:     n.TodoID,
		ReminderID: n.ReminderID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

func NotificationsToDTO(notifications []models.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = NotificationToDTO(&n)
	}
	return dtos
}

// MarkReadRequest is the request body for POST /notifications/mark-read.
type MarkReadRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// UnreadCountResponse is the response for GET /notifications/unread-count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
