package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	"github.com/remindengine/core/internal/service"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// TodoHandler is the HTTP face of the Series Editor (C8/C15).
type TodoHandler struct {
	todos *service.TodoService
	repo  *repository.TodoRepository
}

func NewTodoHandler(todos *service.TodoService, repo *repository.TodoRepository) *TodoHandler {
	return &TodoHandler{todos: todos, repo: repo}
}

func (h *TodoHandler) Create(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	priority := models.PriorityNone
	if req.Priority != nil {
		priority = *req.Priority
	}

	todo, err := h.todos.CreateTodo(userID, service.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt,
		Priority:    priority,
		Recurrence:  req.RecurrenceModel(),
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TodoToDTO(todo))
}

func (h *TodoHandler) Get(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	todo, err := h.repo.FindByIDAndUser(id, userID)
	if err != nil {
		RespondError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.TodoToDTO(todo))
}

// List implements get_todos' filter/sort surface (§10 supplemented feature).
func (h *TodoHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var q dto.ListTodosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	params := repository.TodoListParams{
		UserID:   userID,
		Search:   q.Search,
		Status:   q.Status,
		SortBy:   q.SortBy,
		SortDesc: q.SortDesc,
	}
	if q.DueBefore != nil {
		if t, err := time.Parse(time.RFC3339, *q.DueBefore); err == nil {
			params.DueBefore = &t
		}
	}
	if q.DueAfter != nil {
		if t, err := time.Parse(time.RFC3339, *q.DueAfter); err == nil {
			params.DueAfter = &t
		}
	}
	if q.Priority != "" {
		for _, p := range strings.Split(q.Priority, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
				params.Priority = append(params.Priority, models.Priority(n))
			}
		}
	}
	if q.TagIDs != "" {
		for _, idStr := range strings.Split(q.TagIDs, ",") {
			if id, err := uuid.Parse(strings.TrimSpace(idStr)); err == nil {
				params.TagIDs = append(params.TagIDs, id)
			}
		}
	}

	todos, err := h.repo.List(params)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TodosToDTO(todos))
}

// Update implements update_todo; edit_scope is a query parameter since the
// patch body only ever carries the fields changing (§4.3).
func (h *TodoHandler) Update(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	scope := service.EditScopeNone
	switch c.Query("edit_scope") {
	case "this_only":
		scope = service.EditScopeThisOnly
	case "all_future":
		scope = service.EditScopeAllFuture
	}

	todo, err := h.todos.UpdateTodo(userID, id, service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueAt:       req.DueAt,
		Priority:    req.Priority,
		TagIDs:      req.TagIDs,
	}, scope)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TodoToDTO(todo))
}

// StopRecurring implements stop_recurring; keep_pending is a query flag
// defaulting to true so the caller must opt into deleting pending occurrences.
func (h *TodoHandler) StopRecurring(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	keepPending := c.Query("keep_pending") != "false"

	todo, err := h.todos.StopRecurring(userID, id, keepPending)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TodoToDTO(todo))
}

func (h *TodoHandler) Delete(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid todo id")
		return
	}
	if err := h.todos.DeleteTodo(userID, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
