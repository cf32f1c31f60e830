package push

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatcher_SendToUser_NoopWhenDisabled(t *testing.T) {
	client := NewClient(Config{}, zap.NewNop())
	d := NewDispatcher(client, nil, zap.NewNop())

	assert.NotPanics(t, func() {
		d.SendToUser(uuid.New(), Payload{Title: "t", Body: "b"})
	}, "a disabled client must never reach the subscriptions repository")
}
