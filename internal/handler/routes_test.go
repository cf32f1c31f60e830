package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/remindengine/core/pkg/jwt"
)

// RegisterRoutes only wires gin route trees; it never invokes a handler
// method during registration, so nil-backed handlers are safe here.
func TestRegisterRoutes_DoesNotPanic(t *testing.T) {
	h := &Handlers{
		Auth:          NewAuthHandler(nil),
		Tags:          NewTagHandler(nil),
		Todos:         NewTodoHandler(nil, nil),
		Occurrences:   NewOccurrenceHandler(nil, nil),
		Reminders:     NewReminderHandler(nil),
		Notifications: NewNotificationHandler(nil),
		Push:          NewPushHandler(nil),
		Preferences:   NewPreferencesHandler(nil),
	}

	assert.NotPanics(t, func() {
		r := gin.New()
		RegisterRoutes(r, h, jwt.NewManager("a-very-long-test-secret-key-1234567890"))
	})
}
