package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/remindengine/core/internal/models"
)

// PushSubscriptionRepository is the Push Subscription Store (C5).
type PushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// Upsert inserts a new subscription or, if the endpoint is already
// registered (possibly to a different user), rebinds it to sub's user
// and refreshes its keys — device handoff per §4.6.
func (r *PushSubscriptionRepository) Upsert(sub *models.PushSubscription) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh_key", "auth_key", "user_agent"}),
	}).Create(sub).Error
}

func (r *PushSubscriptionRepository) ListByUser(userID uuid.UUID) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(userID uuid.UUID, endpoint string) error {
	return r.db.Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&models.PushSubscription{}).Error
}

// Delete removes a subscription by id, used when the push transport reports
// a 410 Gone or 404 Not Found for a stale endpoint.
func (r *PushSubscriptionRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.PushSubscription{}).Error
}

func (r *PushSubscriptionRepository) TouchLastUsed(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.PushSubscription{}).Where("id = ?", id).
		Update("last_used_at", &now).Error
}

func (r *PushSubscriptionRepository) FindByID(id, userID uuid.UUID) (*models.PushSubscription, error) {
	var sub models.PushSubscription
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
