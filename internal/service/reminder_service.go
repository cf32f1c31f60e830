package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// ReminderService owns the reminder CRUD surface and enforces invariants
// I3 (exactly one of fire_at/offset_minutes) and I7 (at most
// MaxActiveRemindersPerTodo active reminders per todo, P5).
type ReminderService struct {
	reminders *repository.ReminderRepository
	todos     *repository.TodoRepository
}

func NewReminderService(reminders *repository.ReminderRepository, todos *repository.TodoRepository) *ReminderService {
	return &ReminderService{reminders: reminders, todos: todos}
}

// CreateReminderInput is the validated input to CreateReminder. Exactly
// one of FireAt/OffsetMinutes must be set.
type CreateReminderInput struct {
	OccurrenceID  *uuid.UUID
	FireAt        *time.Time
	OffsetMinutes *int
}

func (s *ReminderService) CreateReminder(userID, todoID uuid.UUID, in CreateReminderInput) (*models.Reminder, error) {
	if (in.FireAt == nil) == (in.OffsetMinutes == nil) {
		return nil, apperrors.ValidationError("exactly one of fire_at or offset_minutes is required")
	}

	todo, err := s.todos.FindByIDAndUser(todoID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	count, err := s.reminders.CountActive(todoID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxActiveRemindersPerTodo {
		return nil, apperrors.New(
			apperrors.CodeValidationError,
			"todo already has the maximum number of active reminders",
			409,
		)
	}

	fireAt := in.FireAt
	if in.OffsetMinutes != nil {
		if todo.DueAt == nil {
			return nil, apperrors.ValidationError("offset_minutes requires the todo to have a due date")
		}
		t := todo.DueAt.Add(time.Duration(*in.OffsetMinutes) * time.Minute)
		fireAt = &t
	}

	reminder := &models.Reminder{
		TodoID:        todoID,
		OccurrenceID:  in.OccurrenceID,
		UserID:        userID,
		FireAt:        *fireAt,
		OffsetMinutes: in.OffsetMinutes,
		Status:        models.ReminderStatusPending,
	}
	if err := s.reminders.Create(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) ListByTodo(userID, todoID uuid.UUID) ([]models.Reminder, error) {
	return s.reminders.ListByTodo(todoID, userID)
}

func (s *ReminderService) Delete(userID, reminderID uuid.UUID) error {
	if _, err := s.reminders.FindByIDAndUser(reminderID, userID); err != nil {
		return apperrors.ErrNotFound
	}
	return s.reminders.Delete(reminderID, userID)
}

// Snooze implements snooze(reminder, minutes): status becomes snoozed and
// fire_at/snoozed_until move to now+minutes. The dispatcher's existing due
// query picks it back up, so there is no separate snooze queue.
func (s *ReminderService) Snooze(userID, reminderID uuid.UUID, minutes int) (*models.Reminder, error) {
	reminder, err := s.reminders.FindByIDAndUser(reminderID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	if !reminder.IsActive() {
		return nil, apperrors.ValidationError("only a pending or snoozed reminder can be snoozed")
	}
	reminder.Snooze(time.Now().Add(time.Duration(minutes) * time.Minute))
	if err := s.reminders.Update(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}
