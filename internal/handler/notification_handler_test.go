package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationHandler_Delete_RejectsMalformedID(t *testing.T) {
	h := NewNotificationHandler(nil)
	r := newTestRouterWithAuth(uuid.New())
	r.DELETE("/notifications/:id", h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/notifications/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid notification id")
}
