package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
)

// PreferencesRepository is the User Preferences Store (C7).
type PreferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetOrCreate returns the user's preferences row, creating a row of
// defaults on first access so callers never handle a missing-row case.
func (r *PreferencesRepository) GetOrCreate(userID uuid.UUID) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := r.db.Where("user_id = ?", userID).First(&prefs).Error
	if err == nil {
		return &prefs, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	prefs = models.UserPreferences{UserID: userID}
	if err := r.db.Create(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferencesRepository) Update(prefs *models.UserPreferences) error {
	return r.db.Save(prefs).Error
}

// ListDigestEnabled returns every preferences row with the daily digest on
// and an hour configured, for the digest dispatcher's per-user sweep (§4.7).
func (r *PreferencesRepository) ListDigestEnabled() ([]models.UserPreferences, error) {
	var prefs []models.UserPreferences
	err := r.db.Where("daily_digest_enabled = ? AND daily_digest_hour IS NOT NULL", true).Find(&prefs).Error
	return prefs, err
}
