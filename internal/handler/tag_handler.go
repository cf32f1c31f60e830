package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// TagHandler is the per-user tag vocabulary surface (C14); there is no
// separate TagService since the store enforces the only invariant (I9)
// itself via its functional unique index.
type TagHandler struct {
	tags *repository.TagRepository
}

func NewTagHandler(tags *repository.TagRepository) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	tags, err := h.tags.ListByUser(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TagsToDTO(tags))
}

func (h *TagHandler) Create(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	if _, err := h.tags.FindByName(userID, req.Name); err == nil {
		RespondError(c, apperrors.New(apperrors.CodeValidationError, "tag name already exists", http.StatusConflict))
		return
	}

	tag := &models.Tag{UserID: userID, Name: req.Name}
	if err := h.tags.Create(tag); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TagToDTO(tag))
}

func (h *TagHandler) Delete(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid tag id")
		return
	}
	if _, err := h.tags.FindByID(id, userID); err != nil {
		RespondError(c, apperrors.ErrNotFound)
		return
	}
	if err := h.tags.Delete(id, userID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
