package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReminderHandler_Delete_RejectsMalformedID(t *testing.T) {
	h := NewReminderHandler(nil)
	r := newTestRouterWithAuth(uuid.New())
	r.DELETE("/reminders/:id", h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/reminders/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid reminder id")
}

func TestReminderHandler_Create_RejectsMalformedTodoID(t *testing.T) {
	h := NewReminderHandler(nil)
	r := newTestRouterWithAuth(uuid.New())
	r.POST("/todos/:id/reminders", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos/not-a-uuid/reminders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid todo id")
}
