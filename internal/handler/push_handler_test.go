package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/remindengine/core/internal/push"
	"github.com/remindengine/core/internal/service"
)

func TestPushHandler_VAPIDPublicKey_DisabledWhenNotConfigured(t *testing.T) {
	client := push.NewClient(push.Config{}, zap.NewNop())
	h := NewPushHandler(service.NewPushService(nil, client))

	r := newTestRouterWithAuth(uuid.New())
	r.GET("/push/vapid-public-key", h.VAPIDPublicKey)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/push/vapid-public-key", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":false`)
}

func TestPushHandler_VAPIDPublicKey_EnabledWhenConfigured(t *testing.T) {
	client := push.NewClient(push.Config{
		VAPIDPublicKey:  "pub-key",
		VAPIDPrivateKey: "priv-key",
		ContactEmail:    "push@example.com",
	}, zap.NewNop())
	h := NewPushHandler(service.NewPushService(nil, client))

	r := newTestRouterWithAuth(uuid.New())
	r.GET("/push/vapid-public-key", h.VAPIDPublicKey)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/push/vapid-public-key", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pub-key")
	assert.Contains(t, w.Body.String(), `"enabled":true`)
}
