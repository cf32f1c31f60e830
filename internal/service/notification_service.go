package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// NotificationRetentionHorizon is the age past which a notification is
// eligible for pruning (invariant I8, C12).
const NotificationRetentionHorizon = 30 * 24 * time.Hour

// NotificationService is the durable in-app inbox (C4) read/write surface.
type NotificationService struct {
	notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.notifications.List(userID, unreadOnly, limit, offset)
}

func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	return s.notifications.UnreadCount(userID)
}

func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	if _, err := s.notifications.FindByIDAndUser(notificationID, userID); err != nil {
		return apperrors.ErrNotFound
	}
	return s.notifications.MarkRead(notificationID, userID)
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.notifications.MarkAllRead(userID)
}

func (s *NotificationService) Delete(userID, notificationID uuid.UUID) error {
	if _, err := s.notifications.FindByIDAndUser(notificationID, userID); err != nil {
		return apperrors.ErrNotFound
	}
	return s.notifications.Delete(notificationID, userID)
}

// PruneExpired deletes notifications past the retention horizon (C12, P7).
// Batch-safe and idempotent: a repeated call with no newly-expired rows
// simply deletes zero.
func (s *NotificationService) PruneExpired(now time.Time) (int64, error) {
	return s.notifications.DeleteOlderThan(now.Add(-NotificationRetentionHorizon))
}
