package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPreferencesHandler_Timezones_DoesNotTouchStore(t *testing.T) {
	h := NewPreferencesHandler(nil)
	r := newTestRouterWithAuth(uuid.New())
	r.GET("/me/preferences/timezones", h.Timezones)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me/preferences/timezones", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UTC")
}
