package push

import (
	"encoding/json"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
)

// Config holds VAPID configuration. Sending is disabled — truthfully, not
// by raising — whenever any of the three fields is empty (§4.6).
type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	ContactEmail    string
}

func (c Config) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != "" && c.ContactEmail != ""
}

// Subscription is the transport-level view of a push endpoint, decoupled
// from the persistence model so the transport package has no store
// dependency.
type Subscription struct {
	ID        string
	Endpoint  string
	P256dhKey string
	AuthKey   string
}

// Payload is the JSON body encrypted for the browser's push service.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Outcome reports what a single send did, so callers can update
// last_used_at or delete a gone subscription without the transport
// reaching into the store itself.
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeGone
	OutcomeFailed
)

// Client wraps github.com/SherClockHolmes/webpush-go the way the teacher's
// apns/fcm clients wrap their own transports: a Config + NewClient
// constructor, one blocking Send method per recipient.
type Client struct {
	config Config
	log    *zap.Logger
}

func NewClient(config Config, log *zap.Logger) *Client {
	return &Client{config: config, log: log}
}

func (c *Client) Enabled() bool {
	return c.config.Enabled()
}

func (c *Client) PublicKey() string {
	return c.config.VAPIDPublicKey
}

// Send encrypts payload against sub's keys and POSTs it to the endpoint.
// It never returns an error to make the caller retry or raise — outcomes
// are reported through the Outcome value, matching §4.6's "log and
// continue" policy.
func (c *Client) Send(sub Subscription, payload Payload) Outcome {
	if !c.Enabled() {
		return OutcomeFailed
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("marshal push payload", zap.Error(err))
		return OutcomeFailed
	}

	resp, err := webpush.SendNotification(body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, &webpush.Options{
		Subscriber:      c.config.ContactEmail,
		VAPIDPublicKey:  c.config.VAPIDPublicKey,
		VAPIDPrivateKey: c.config.VAPIDPrivateKey,
		TTL:             60,
	})
	if err != nil {
		c.log.Warn("push send failed", zap.String("subscription_id", sub.ID), zap.Error(err))
		return OutcomeFailed
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return OutcomeSent
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return OutcomeGone
	default:
		c.log.Warn("push endpoint rejected notification",
			zap.String("subscription_id", sub.ID), zap.Int("status", resp.StatusCode))
		return OutcomeFailed
	}
}
