package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
)

// ReminderRepository is the Reminder Store (C3).
type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	return r.db.Create(reminder).Error
}

func (r *ReminderRepository) FindByID(id uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.Where("id = ?", id).First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *ReminderRepository) FindByIDAndUser(id, userID uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

// CountActive counts pending+snoozed reminders on a todo, used to enforce
// invariant I7 (at most MaxActiveRemindersPerTodo).
func (r *ReminderRepository) CountActive(todoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reminder{}).
		Where("todo_id = ? AND status IN ?", todoID, []models.ReminderStatus{
			models.ReminderStatusPending, models.ReminderStatusSnoozed,
		}).Count(&count).Error
	return count, err
}

func (r *ReminderRepository) ListByTodo(todoID, userID uuid.UUID) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.Where("todo_id = ? AND user_id = ?", todoID, userID).
		Order("fire_at ASC").Find(&reminders).Error
	return reminders, err
}

// DueReminders returns pending/snoozed reminders whose fire time has
// arrived, ascending by fire_at, bounded by limit (§4.5 step 1).
func (r *ReminderRepository) DueReminders(now time.Time, limit int) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.
		Where("fire_at <= ? AND status IN ?", now, []models.ReminderStatus{
			models.ReminderStatusPending, models.ReminderStatusSnoozed,
		}).
		Order("fire_at ASC").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}

func (r *ReminderRepository) Update(reminder *models.Reminder) error {
	return r.db.Save(reminder).Error
}

func (r *ReminderRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reminder{}).Error
}
