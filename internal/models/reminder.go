package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderStatus transitions: pending -> sent | snoozed | cancelled;
// snoozed -> pending (implicit, via fire_at update) -> sent | cancelled.
// sent and cancelled are terminal (invariant I4).
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusSent      ReminderStatus = "sent"
	ReminderStatusSnoozed   ReminderStatus = "snoozed"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

// MaxActiveRemindersPerTodo enforces invariant I7.
const MaxActiveRemindersPerTodo = 5

// Reminder carries exactly one of {FireAt set directly, OffsetMinutes}
// at creation time (invariant I3); OffsetMinutes is resolved against
// the parent todo's due date by the reminder service, not here.
type Reminder struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TodoID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"todo_id"`
	OccurrenceID *uuid.UUID `gorm:"type:uuid" json:"occurrence_id,omitempty"`
	UserID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`

	FireAt        time.Time      `gorm:"index;not null" json:"fire_at"`
	OffsetMinutes *int           `json:"offset_minutes,omitempty"`
	Status        ReminderStatus `gorm:"default:'pending';index" json:"status"`
	SentAt        *time.Time     `json:"sent_at,omitempty"`
	SnoozedUntil  *time.Time     `json:"snoozed_until,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the reminder can still fire.
func (r *Reminder) IsActive() bool {
	return r.Status == ReminderStatusPending || r.Status == ReminderStatusSnoozed
}

// Snooze reschedules the reminder forward; the dispatcher's own due
// query picks it back up once fire_at arrives, so there is no separate
// snooze queue.
func (r *Reminder) Snooze(until time.Time) {
	r.Status = ReminderStatusSnoozed
	r.FireAt = until
	r.SnoozedUntil = &until
}

// MarkSent transitions the reminder into its terminal sent state.
func (r *Reminder) MarkSent(at time.Time) {
	r.Status = ReminderStatusSent
	r.SentAt = &at
}

// Cancel transitions the reminder into its terminal cancelled state.
func (r *Reminder) Cancel() {
	r.Status = ReminderStatusCancelled
}
