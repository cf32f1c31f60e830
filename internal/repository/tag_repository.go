package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
)

// TagRepository is the per-user tag vocabulary (C14). Uniqueness on
// (user_id, lower(name)) is enforced by a functional index created in
// cmd/migrate (invariant I9); FindByName below is the application-level
// pre-check used to return a readable conflict before hitting that index.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *TagRepository) FindByID(id, userID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) FindByName(userID uuid.UUID, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ? AND lower(name) = ?", userID, strings.ToLower(name)).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ListByUser(userID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByIDs returns only the tags among ids that belong to userID, silently
// dropping foreign/invalid ids (mirrors the original's _assign_tags policy).
func (r *TagRepository) FindByIDs(userID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{}).Error
}
