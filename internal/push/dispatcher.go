package push

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
)

// Dispatcher fans a single payload out to every subscription a user has
// registered, one goroutine per subscription, carried over in shape from
// the teacher's notification.Dispatcher.SendToUser.
type Dispatcher struct {
	client        *Client
	subscriptions *repository.PushSubscriptionRepository
	log           *zap.Logger
}

func NewDispatcher(client *Client, subscriptions *repository.PushSubscriptionRepository, log *zap.Logger) *Dispatcher {
	return &Dispatcher{client: client, subscriptions: subscriptions, log: log}
}

// SendToUser delivers payload to every one of the user's subscriptions.
// Best-effort: a failure on one subscription never affects another, and
// the call never returns an error to its caller (§4.5 step d).
func (d *Dispatcher) SendToUser(userID uuid.UUID, payload Payload) {
	if !d.client.Enabled() {
		return
	}

	subs, err := d.subscriptions.ListByUser(userID)
	if err != nil {
		d.log.Error("list push subscriptions", zap.Error(err))
		return
	}
	if len(subs) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub models.PushSubscription) {
			defer wg.Done()
			d.sendOne(sub, payload)
		}(sub)
	}
	wg.Wait()
}

func (d *Dispatcher) sendOne(sub models.PushSubscription, payload Payload) {
	outcome := d.client.Send(Subscription{
		ID:        sub.ID.String(),
		Endpoint:  sub.Endpoint,
		P256dhKey: sub.P256dhKey,
		AuthKey:   sub.AuthKey,
	}, payload)

	switch outcome {
	case OutcomeSent:
		if err := d.subscriptions.TouchLastUsed(sub.ID); err != nil {
			d.log.Warn("touch subscription last_used_at", zap.Error(err))
		}
	case OutcomeGone:
		if err := d.subscriptions.Delete(sub.ID); err != nil {
			d.log.Warn("delete gone subscription", zap.Error(err))
		}
	case OutcomeFailed:
		// logged inside client.Send; no retry within this tick.
	}
}
