package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccurrenceStatus is a closed sum type (pending -> completed | skipped).
// Complete and Skip set the status unconditionally; no write site rejects
// a change to an occurrence that is already completed or skipped.
type OccurrenceStatus string

const (
	OccurrenceStatusPending   OccurrenceStatus = "pending"
	OccurrenceStatusCompleted OccurrenceStatus = "completed"
	OccurrenceStatusSkipped   OccurrenceStatus = "skipped"
)

// Occurrence is a single materialized date in a recurring series.
// Uniqueness on (todo_id, occurrence_date) is what makes top-up
// idempotent (invariant I2).
type Occurrence struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TodoID         uuid.UUID        `gorm:"type:uuid;uniqueIndex:idx_todo_occurrence_date;not null" json:"todo_id"`
	UserID         uuid.UUID        `gorm:"type:uuid;index;not null" json:"user_id"`
	OccurrenceDate time.Time        `gorm:"type:date;uniqueIndex:idx_todo_occurrence_date;not null" json:"occurrence_date"`
	Status         OccurrenceStatus `gorm:"default:'pending'" json:"status"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Occurrence) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Complete marks the occurrence as done.
func (o *Occurrence) Complete(at time.Time) {
	o.Status = OccurrenceStatusCompleted
	o.CompletedAt = &at
}

// Skip marks the occurrence as skipped without ever being completed.
func (o *Occurrence) Skip() {
	o.Status = OccurrenceStatusSkipped
}
