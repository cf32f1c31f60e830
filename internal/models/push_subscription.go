package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushSubscription is a browser endpoint plus the keys needed to
// encrypt a Web Push payload for it. Endpoint is globally unique:
// registering an endpoint already bound to another user rebinds it
// (device handoff), matching the original's register_subscription.
type PushSubscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Endpoint  string    `gorm:"uniqueIndex;not null" json:"endpoint"`
	P256dhKey string    `gorm:"not null" json:"p256dh_key"`
	AuthKey   string    `gorm:"not null" json:"auth_key"`
	UserAgent *string   `json:"user_agent,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

func (p *PushSubscription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
