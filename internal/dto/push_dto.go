package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// SubscribeRequest is the request body for POST /push/subscribe, matching
// the shape the browser's PushSubscription.toJSON() produces.
type SubscribeRequest struct {
	Endpoint  string  `json:"endpoint" binding:"required"`
	Keys      Keys    `json:"keys" binding:"required"`
	UserAgent *string `json:"user_agent,omitempty"`
}

type Keys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// UnsubscribeRequest is the request body for POST /push/unsubscribe.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// VAPIDPublicKeyResponse is the response for GET /push/vapid-public-key.
type VAPIDPublicKeyResponse struct {
	PublicKey string `json:"public_key"`
	Enabled   bool   `json:"enabled"`
}

// PushSubscriptionDTO represents a subscription in responses.
type PushSubscriptionDTO struct {
	ID         uuid.UUID  `json:"id"`
	Endpoint   string     `json:"endpoint"`
	UserAgent  *string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

func PushSubscriptionToDTO(p *models.PushSubscription) PushSubscriptionDTO {
	return PushSubscriptionDTO{
		ID:         p.ID,
		Endpoint:   p.Endpoint,
		UserAgent:  p.UserAgent,
		CreatedAt:  p.CreatedAt,
		LastUsedAt: p.LastUsedAt,
	}
}

func PushSubscriptionsToDTO(subs []models.PushSubscription) []PushSubscriptionDTO {
	dtos := make([]PushSubscriptionDTO, len(subs))
	for i, s := range subs {
		dtos[i] = PushSubscriptionToDTO(&s)
	}
	return dtos
}
