package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/pkg/jwt"
)

// Handlers bundles every resource handler so RegisterRoutes takes one
// argument, mirroring the teacher's flat route-registration style in
// cmd/api/main.go (there rewired around gqlgen, here around gin.RouterGroup).
type Handlers struct {
	Auth          *AuthHandler
	Tags          *TagHandler
	Todos         *TodoHandler
	Occurrences   *OccurrenceHandler
	Reminders     *ReminderHandler
	Notifications *NotificationHandler
	Push          *PushHandler
	Preferences   *PreferencesHandler
}

// RegisterRoutes wires every endpoint from SPEC_FULL.md §6 onto the gin
// engine. Routes under /me, /todos, /occurrences, /reminders,
// /notifications, and /push (aside from the public VAPID key) require a
// bearer token.
func RegisterRoutes(r *gin.Engine, h *Handlers, jwtManager *jwt.Manager) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	r.GET("/push/vapid-public-key", h.Push.VAPIDPublicKey)

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(jwtManager))
	{
		api.GET("/me", h.Auth.Me)

		api.GET("/me/preferences", h.Preferences.Get)
		api.PATCH("/me/preferences", h.Preferences.Update)
		api.GET("/me/preferences/timezones", h.Preferences.Timezones)

		api.GET("/tags", h.Tags.List)
		api.POST("/tags", h.Tags.Create)
		api.DELETE("/tags/:id", h.Tags.Delete)

		api.GET("/todos", h.Todos.List)
		api.POST("/todos", h.Todos.Create)
		api.GET("/todos/:id", h.Todos.Get)
		api.PATCH("/todos/:id", h.Todos.Update)
		api.POST("/todos/:id/stop-recurring", h.Todos.StopRecurring)
		api.DELETE("/todos/:id", h.Todos.Delete)

		api.GET("/todos/:id/occurrences", h.Occurrences.ListByTodo)
		api.PATCH("/occurrences/:id", h.Occurrences.Update)

		api.GET("/todos/:id/reminders", h.Reminders.ListByTodo)
		api.POST("/todos/:id/reminders", h.Reminders.Create)
		api.POST("/reminders/:id/snooze", h.Reminders.Snooze)
		api.DELETE("/reminders/:id", h.Reminders.Delete)

		api.GET("/notifications", h.Notifications.List)
		api.GET("/notifications/unread-count", h.Notifications.UnreadCount)
		api.POST("/notifications/mark-read", h.Notifications.MarkRead)
		api.POST("/notifications/mark-all-read", h.Notifications.MarkAllRead)
		api.DELETE("/notifications/:id", h.Notifications.Delete)

		api.GET("/push/subscriptions", h.Push.List)
		api.POST("/push/subscribe", h.Push.Subscribe)
		api.POST("/push/unsubscribe", h.Push.Unsubscribe)
		api.DELETE("/push/subscriptions/:id", h.Push.Delete)
	}
}
