package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority mirrors the teacher's mobile-reminder priority enum, reused
// here to drive the digest's colored-dot marker.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Frequency is the base RRULE frequency a RecurrenceConfig derives from.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyCustom  Frequency = "custom"
)

// RecurrenceConfig is the user-facing recurrence shape the Recurrence
// Evaluator (internal/recurrence) formats into an RRULE string. Stored
// as JSONB alongside the formatted string so edits can reconstruct the
// rule without re-parsing RFC 5545 text.
type RecurrenceConfig struct {
	Frequency  Frequency `json:"frequency"`
	Interval   int       `json:"interval"`
	DaysOfWeek []string  `json:"days_of_week,omitempty"` // MO,TU,WE,TH,FR,SA,SU
	DayOfMonth *int      `json:"day_of_month,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"` // YYYY-MM-DD
	EndCount   *int      `json:"end_count,omitempty"`
}

func (r RecurrenceConfig) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RecurrenceConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("models: cannot scan RecurrenceConfig")
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, r)
}

// Todo is the series head. is_recurring=true implies a non-empty RRule
// and a due date anchoring the series (invariant I1).
type Todo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `gorm:"default:false" json:"completed"`

	DueAt    *time.Time `json:"due_at,omitempty"`
	Priority Priority   `gorm:"default:0" json:"priority"`

	IsRecurring          bool              `gorm:"default:false" json:"is_recurring"`
	RecurrenceConfig     *RecurrenceConfig `gorm:"type:jsonb" json:"recurrence_config,omitempty"`
	RRule                *string           `json:"rrule,omitempty"`
	RecurrenceEndDate    *time.Time        `json:"recurrence_end_date,omitempty"`
	OccurrencesGenerated int               `gorm:"default:0" json:"occurrences_generated"`

	Tags []Tag `gorm:"many2many:todo_tags;" json:"tags,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the todo is still open work.
func (t *Todo) IsActive() bool {
	return !t.Completed
}
