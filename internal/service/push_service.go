package service

import (
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/push"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// PushService is the Push Registry (C5) surface the HTTP layer talks to;
// delivery itself is push.Dispatcher.
type PushService struct {
	subscriptions *repository.PushSubscriptionRepository
	client        *push.Client
}

func NewPushService(subscriptions *repository.PushSubscriptionRepository, client *push.Client) *PushService {
	return &PushService{subscriptions: subscriptions, client: client}
}

func (s *PushService) VAPIDPublicKey() (string, bool) {
	if !s.client.Enabled() {
		return "", false
	}
	return s.client.PublicKey(), true
}

type SubscribeInput struct {
	Endpoint  string
	P256dhKey string
	AuthKey   string
	UserAgent *string
}

// Subscribe registers or rebinds an endpoint to userID (device handoff,
// §4.6) — rebinding is handled by the store's upsert-on-endpoint-conflict.
func (s *PushService) Subscribe(userID uuid.UUID, in SubscribeInput) (*models.PushSubscription, error) {
	sub := &models.PushSubscription{
		UserID:    userID,
		Endpoint:  in.Endpoint,
		P256dhKey: in.P256dhKey,
		AuthKey:   in.AuthKey,
		UserAgent: in.UserAgent,
	}
	if err := s.subscriptions.Upsert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *PushService) Unsubscribe(userID uuid.UUID, endpoint string) error {
	return s.subscriptions.DeleteByEndpoint(userID, endpoint)
}

func (s *PushService) ListByUser(userID uuid.UUID) ([]models.PushSubscription, error) {
	return s.subscriptions.ListByUser(userID)
}

func (s *PushService) Delete(userID, subscriptionID uuid.UUID) error {
	if _, err := s.subscriptions.FindByID(subscriptionID, userID); err != nil {
		return apperrors.ErrNotFound
	}
	return s.subscriptions.Delete(subscriptionID)
}
