package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/remindengine/core/internal/middleware"
)

func newTestRouterWithAuth(userID uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	return r
}

func TestTodoHandler_Get_RejectsMalformedID(t *testing.T) {
	h := NewTodoHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.GET("/todos/:id", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid todo id")
}

func TestTodoHandler_Update_RejectsMalformedID(t *testing.T) {
	h := NewTodoHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.PATCH("/todos/:id", h.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/todos/not-a-uuid", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoHandler_Update_RejectsMalformedBody(t *testing.T) {
	h := NewTodoHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.PATCH("/todos/:id", h.Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/todos/"+uuid.New().String(), strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoHandler_Delete_RejectsMalformedID(t *testing.T) {
	h := NewTodoHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.DELETE("/todos/:id", h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/todos/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoHandler_StopRecurring_RejectsMalformedID(t *testing.T) {
	h := NewTodoHandler(nil, nil)
	r := newTestRouterWithAuth(uuid.New())
	r.POST("/todos/:id/stop-recurring", h.StopRecurring)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos/not-a-uuid/stop-recurring", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
