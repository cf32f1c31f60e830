package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPreferences holds the per-user scheduling knobs: timezone, the
// default reminder offset applied at todo creation, and digest/push
// toggles.
type UserPreferences struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Timezone               string `gorm:"default:'UTC';not null" json:"timezone"`
	DefaultReminderOffset  *int   `json:"default_reminder_offset,omitempty"`
	PushEnabled            bool   `gorm:"default:true" json:"push_enabled"`
	DailyDigestEnabled     bool   `gorm:"default:false" json:"daily_digest_enabled"`
	DailyDigestHour        *int   `json:"daily_digest_hour,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
