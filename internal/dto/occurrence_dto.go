package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
)

// UpdateOccurrenceRequest is the patch body for PATCH /occurrences/{id}.
type UpdateOccurrenceRequest struct {
	Status *models.OccurrenceStatus `json:"status,omitempty"`
}

// OccurrenceDTO represents a materialized occurrence in responses.
type OccurrenceDTO struct {
	ID             uuid.UUID               `json:"id"`
	TodoID         uuid.UUID               `json:"todo_id"`
	OccurrenceDate time.Time               `json:"occurrence_date"`
	Status         models.OccurrenceStatus `json:"status"`
	CompletedAt    *time.Time              `json:"completed_at,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func OccurrenceToDTO(o *models.Occurrence) OccurrenceDTO {
	return OccurrenceDTO{
		ID:             o.ID,
		TodoID:         o.TodoID,
		OccurrenceDate: o.OccurrenceDate,
		Status:         o.Status,
		CompletedAt:    o.CompletedAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func OccurrencesToDTO(occs []models.Occurrence) []OccurrenceDTO {
	dtos := make([]OccurrenceDTO, len(occs))
	for i, o := range occs {
		dtos[i] = OccurrenceToDTO(&o)
	}
	return dtos
}
