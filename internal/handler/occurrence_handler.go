package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	"github.com/remindengine/core/internal/service"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// OccurrenceHandler is the HTTP face of the Occurrence Store (C2/C15):
// listing a series' materialized occurrences and transitioning one via
// complete/skip, which is the only mutation get_todos' completion flow
// exposes (the row itself is never freely editable).
type OccurrenceHandler struct {
	todos       *service.TodoService
	occurrences *repository.OccurrenceRepository
}

func NewOccurrenceHandler(todos *service.TodoService, occurrences *repository.OccurrenceRepository) *OccurrenceHandler {
	return &OccurrenceHandler{todos: todos, occurrences: occurrences}
}

func (h *OccurrenceHandler) ListByTodo(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}

	var statusFilter *models.OccurrenceStatus
	if s := c.Query("status"); s != "" {
		st := models.OccurrenceStatus(s)
		statusFilter = &st
	}

	occs, err := h.occurrences.ListByTodo(todoID, userID, statusFilter)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OccurrencesToDTO(occs))
}

// Update implements complete_occurrence/skip_occurrence (§4.3), dispatched
// on the requested target status.
func (h *OccurrenceHandler) Update(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid occurrence id")
		return
	}
	var req dto.UpdateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}
	if req.Status == nil {
		RespondValidation(c, "status is required")
		return
	}

	var occ *models.Occurrence
	switch *req.Status {
	case models.OccurrenceStatusCompleted:
		occ, err = h.todos.CompleteOccurrence(userID, id)
	case models.OccurrenceStatusSkipped:
		occ, err = h.todos.SkipOccurrence(userID, id)
	default:
		RespondError(c, apperrors.ValidationError("status must be completed or skipped"))
		return
	}
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OccurrenceToDTO(occ))
}
