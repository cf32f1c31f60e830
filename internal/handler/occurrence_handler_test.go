package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOccurrenceHandler_Update_RejectsMissingStatus(t *testing.T) {
	h := NewOccurrenceHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.PATCH("/occurrences/:id", h.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/occurrences/"+uuid.New().String(), strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status is required")
}

func TestOccurrenceHandler_Update_RejectsUnsupportedStatus(t *testing.T) {
	h := NewOccurrenceHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.PATCH("/occurrences/:id", h.Update)

	w := httptest.NewRecorder()
	body := `{"status":"pending"}`
	req := httptest.NewRequest(http.MethodPatch, "/occurrences/"+uuid.New().String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "completed or skipped")
}

func TestOccurrenceHandler_Update_RejectsMalformedID(t *testing.T) {
	h := NewOccurrenceHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.PATCH("/occurrences/:id", h.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/occurrences/not-a-uuid", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
