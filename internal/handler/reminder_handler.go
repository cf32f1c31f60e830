package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/service"
)

// ReminderHandler is the HTTP face of C3: per-todo reminder CRUD plus snooze.
type ReminderHandler struct {
	reminders *service.ReminderService
}

func NewReminderHandler(reminders *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

func (h *ReminderHandler) Create(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	reminder, err := h.reminders.CreateReminder(userID, todoID, service.CreateReminderInput{
		OccurrenceID:  req.OccurrenceID,
		FireAt:        req.FireAt,
		OffsetMinutes: req.OffsetMinutes,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ReminderToDTO(reminder))
}

func (h *ReminderHandler) ListByTodo(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	reminders, err := h.reminders.ListByTodo(userID, todoID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RemindersToDTO(reminders))
}

func (h *ReminderHandler) Snooze(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid reminder id")
		return
	}
	var req dto.SnoozeReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	reminder, err := h.reminders.Snooze(userID, id, req.Minutes)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReminderToDTO(reminder))
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid reminder id")
		return
	}
	if err := h.reminders.Delete(userID, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
