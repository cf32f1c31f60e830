package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// UpdatePreferencesRequest is the patch body for PATCH /me/preferences.
type UpdatePreferencesRequest struct {
	Timezone              *string `json:"timezone,omitempty"`
	DefaultReminderOffset *int    `json:"default_reminder_offset,omitempty"`
	PushEnabled           *bool   `json:"push_enabled,omitempty"`
	DailyDigestEnabled    *bool   `json:"daily_digest_enabled,omitempty"`
	DailyDigestHour       *int    `json:"daily_digest_hour,omitempty"`
}

// PreferencesDTO represents preferences in responses.
type PreferencesDTO struct {
	ID                    uuid.UUID `json:"id"`
	Timezone              string    `json:"timezone"`
	DefaultReminderOffset *int      `json:"default_reminder_offset,omitempty"`
	PushEnabled           bool      `json:"push_enabled"`
	DailyDigestEnabled    bool      `json:"daily_digest_enabled"`
	DailyDigestHour       *int      `json:"daily_digest_hour,omitempty"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func PreferencesToDTO(p *models.UserPreferences) PreferencesDTO {
	return PreferencesDTO{
		ID:                    p.ID,
		Timezone:              p.Timezone,
		DefaultReminderOffset: p.DefaultReminderOffset,
		PushEnabled:           p.PushEnabled,
		DailyDigestEnabled:    p.DailyDigestEnabled,
		DailyDigestHour:       p.DailyDigestHour,
		UpdatedAt:             p.UpdatedAt,
	}
}
