package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// TagDTO represents a tag in responses.
type TagDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func TagToDTO(t *models.Tag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func TagsToDTO(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = TagToDTO(&t)
	}
	return dtos
}
