package service

import (
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
)

// PreferencesService wraps C7, the per-user scheduling knobs consulted by
// the digest dispatcher and the auto-reminder logic in the Series Editor.
type PreferencesService struct {
	preferences *repository.PreferencesRepository
}

func NewPreferencesService(preferences *repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{preferences: preferences}
}

func (s *PreferencesService) Get(userID uuid.UUID) (*models.UserPreferences, error) {
	return s.preferences.GetOrCreate(userID)
}

// UpdatePreferencesInput carries only the fields an update may change; nil fields
// leave the column untouched.
type UpdatePreferencesInput struct {
	Timezone              *string
	DefaultReminderOffset *int
	PushEnabled           *bool
	DailyDigestEnabled    *bool
	DailyDigestHour       *int
}

func (s *PreferencesService) Update(userID uuid.UUID, in UpdatePreferencesInput) (*models.UserPreferences, error) {
	prefs, err := s.preferences.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if in.Timezone != nil {
		prefs.Timezone = *in.Timezone
	}
	if in.DefaultReminderOffset != nil {
		prefs.DefaultReminderOffset = in.DefaultReminderOffset
	}
	if in.PushEnabled != nil {
		prefs.PushEnabled = *in.PushEnabled
	}
	if in.DailyDigestEnabled != nil {
		prefs.DailyDigestEnabled = *in.DailyDigestEnabled
	}
	if in.DailyDigestHour != nil {
		prefs.DailyDigestHour = in.DailyDigestHour
	}
	if err := s.preferences.Update(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// Timezones returns the IANA timezone list the client renders as a picker
// for GET /me/preferences/timezones.
func Timezones() []string {
	return commonTimezones
}

var commonTimezones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Moscow",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Asia/Singapore",
	"Australia/Sydney",
	"Pacific/Auckland",
}
