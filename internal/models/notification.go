package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationKind is closed. RecurringDue is declared but intentionally
// unused by any routing path — see DESIGN.md Open Question 3.
type NotificationKind string

const (
	NotificationKindReminder     NotificationKind = "reminder"
	NotificationKindDailyDigest  NotificationKind = "daily_digest"
	NotificationKindRecurringDue NotificationKind = "recurring_due" // reserved, unused
)

// Notification is the durable, in-app record of a fired reminder or a
// digest. It survives deletion of its referenced todo/reminder with
// those references nulled (invariant I6).
type Notification struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;index;not null" json:"user_id"`
	Kind       NotificationKind `gorm:"not null" json:"kind"`
	Title      string           `gorm:"not null" json:"title"`
	Body       *string          `json:"body,omitempty"`
	TodoID     *uuid.UUID       `gorm:"type:uuid" json:"todo_id,omitempty"`
	ReminderID *uuid.UUID       `gorm:"type:uuid" json:"reminder_id,omitempty"`
	Read       bool             `gorm:"default:false" json:"read"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
