package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/recurrence"
	"github.com/remindengine/core/internal/repository"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// EditScope controls how update_todo treats a recurring series, matching
// the this_only/all_future/none contract of the Series Editor (C8).
type EditScope string

const (
	EditScopeNone       EditScope = "none"
	EditScopeThisOnly   EditScope = "this_only"
	EditScopeAllFuture  EditScope = "all_future"
)

// TodoPatch carries the subset of fields an update may change; a nil field
// leaves the column untouched, mirroring the original's exclude_unset patch.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	DueAt       *time.Time
	Priority    *models.Priority
	TagIDs      []uuid.UUID
}

// TodoService is the Series Editor (C8): the most intricate component,
// grounded directly on original_source's TodoService (create_todo,
// update_todo/_update_this_only, stop_recurring, complete/skip_occurrence,
// delete_todo) and realized with the teacher's repository-backed service
// shape.
type TodoService struct {
	todos        *repository.TodoRepository
	occurrences  *repository.OccurrenceRepository
	reminders    *repository.ReminderRepository
	tags         *repository.TagRepository
	preferences  *repository.PreferencesRepository
	maintainer   *OccurrenceMaintainer
	log          *zap.Logger
}

func NewTodoService(
	todos *repository.TodoRepository,
	occurrences *repository.OccurrenceRepository,
	reminders *repository.ReminderRepository,
	tags *repository.TagRepository,
	preferences *repository.PreferencesRepository,
	maintainer *OccurrenceMaintainer,
	log *zap.Logger,
) *TodoService {
	return &TodoService{
		todos:       todos,
		occurrences: occurrences,
		reminders:   reminders,
		tags:        tags,
		preferences: preferences,
		maintainer:  maintainer,
		log:         log,
	}
}

// CreateTodoInput is the validated input to CreateTodo.
type CreateTodoInput struct {
	Title       string
	Description *string
	DueAt       *time.Time
	Priority    models.Priority
	Recurrence  *models.RecurrenceConfig
	TagIDs      []uuid.UUID
}

// CreateTodo implements create_todo: recurring todos require a due date
// (invariant I1), get an RRULE from C1, seed their first occurrence window
// via C9, and — independent of recurrence — may auto-create one reminder
// from the user's default offset if the computed fire time is still future.
func (s *TodoService) CreateTodo(userID uuid.UUID, in CreateTodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueAt:       in.DueAt,
		Priority:    in.Priority,
	}

	if in.Recurrence != nil {
		if in.DueAt == nil {
			return nil, apperrors.ValidationError("due_at is required for recurring todos")
		}
		rrule, err := recurrence.FormatRRule(*in.Recurrence)
		if err != nil {
			return nil, apperrors.ValidationError(err.Error())
		}
		todo.IsRecurring = true
		todo.RecurrenceConfig = in.Recurrence
		todo.RRule = &rrule
		if in.Recurrence.EndDate != nil {
			if end, err := time.Parse("2006-01-02", *in.Recurrence.EndDate); err == nil {
				todo.RecurrenceEndDate = &end
			}
		}
	}

	if err := s.todos.Create(todo); err != nil {
		return nil, err
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.tags.FindByIDs(userID, in.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.todos.ReplaceTags(todo, tags); err != nil {
			return nil, err
		}
	}

	if todo.IsRecurring {
		windowEnd := todo.DueAt.AddDate(1, 0, 0) // generous outer bound; the count cap does the real limiting here
		if _, err := s.maintainer.TopUp(todo.ID, userID, *todo.RRule, *todo.DueAt, *todo.DueAt, windowEnd, recurrence.DefaultEnumerationCap); err != nil {
			return nil, err
		}
	}

	if in.DueAt != nil {
		if err := s.autoApplyDefaultReminder(userID, todo.ID, *in.DueAt); err != nil {
			s.log.Warn("auto reminder creation failed", zap.Error(err))
		}
	}

	return s.todos.FindByIDAndUser(todo.ID, userID)
}

// autoApplyDefaultReminder mirrors _auto_apply_default_reminder: fire_at is
// due_at plus the user's configured offset, and the reminder is skipped
// (not created) if that instant has already passed.
func (s *TodoService) autoApplyDefaultReminder(userID, todoID uuid.UUID, dueAt time.Time) error {
	prefs, err := s.preferences.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if prefs.DefaultReminderOffset == nil {
		return nil
	}

	fireAt := dueAt.Add(time.Duration(*prefs.DefaultReminderOffset) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	offset := *prefs.DefaultReminderOffset
	return s.reminders.Create(&models.Reminder{
		TodoID:        todoID,
		UserID:        userID,
		FireAt:        fireAt,
		OffsetMinutes: &offset,
		Status:        models.ReminderStatusPending,
	})
}

// UpdateTodo implements update_todo. Scope none/all_future patch the head
// in place; this_only forks a new non-recurring todo and skips the current
// occurrence (§4.3).
func (s *TodoService) UpdateTodo(userID, todoID uuid.UUID, patch TodoPatch, scope EditScope) (*models.Todo, error) {
	todo, err := s.todos.FindByIDAndUser(todoID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	if todo.IsRecurring && scope == EditScopeThisOnly {
		return s.updateThisOnly(userID, todo, patch)
	}

	applyPatch(todo, patch)
	if err := s.todos.Update(todo); err != nil {
		return nil, err
	}

	if patch.TagIDs != nil {
		tags, err := s.tags.FindByIDs(userID, patch.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.todos.ReplaceTags(todo, tags); err != nil {
			return nil, err
		}
	}

	return s.todos.FindByIDAndUser(todoID, userID)
}

func applyPatch(todo *models.Todo, patch TodoPatch) {
	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if patch.DueAt != nil {
		todo.DueAt = patch.DueAt
	}
	if patch.Priority != nil {
		todo.Priority = *patch.Priority
	}
}

// updateThisOnly materializes a new non-recurring todo merging head+patch,
// then skips the head's current occurrence and tops its window back up.
func (s *TodoService) updateThisOnly(userID uuid.UUID, head *models.Todo, patch TodoPatch) (*models.Todo, error) {
	current, err := s.occurrences.CurrentOccurrence(head.ID, userID, truncateToDate(time.Now()))
	if err != nil {
		return nil, err
	}

	dueAt := head.DueAt
	if current != nil {
		d := current.OccurrenceDate
		dueAt = &d
	}
	if patch.DueAt != nil {
		dueAt = patch.DueAt
	}

	title := head.Title
	if patch.Title != nil {
		title = *patch.Title
	}
	description := head.Description
	if patch.Description != nil {
		description = patch.Description
	}
	priority := head.Priority
	if patch.Priority != nil {
		priority = *patch.Priority
	}
	completed := false
	if patch.Completed != nil {
		completed = *patch.Completed
	}

	newTodo := &models.Todo{
		UserID:      userID,
		Title:       title,
		Description: description,
		DueAt:       dueAt,
		Priority:    priority,
		Completed:   completed,
		IsRecurring: false,
	}
	if err := s.todos.Create(newTodo); err != nil {
		return nil, err
	}

	tagIDs := patch.TagIDs
	if tagIDs == nil {
		existingTagIDs := make([]uuid.UUID, len(head.Tags))
		for i, t := range head.Tags {
			existingTagIDs[i] = t.ID
		}
		tagIDs = existingTagIDs
	}
	if len(tagIDs) > 0 {
		tags, err := s.tags.FindByIDs(userID, tagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.todos.ReplaceTags(newTodo, tags); err != nil {
			return nil, err
		}
	}

	if current != nil {
		current.Skip()
		if err := s.occurrences.Update(current); err != nil {
			return nil, err
		}
		if head.RRule != nil {
			if err := s.maintainer.EnsureFloor(head.ID, userID, *head.RRule, *head.DueAt, truncateToDate(time.Now())); err != nil {
				return nil, err
			}
		}
	}

	return s.todos.FindByIDAndUser(newTodo.ID, userID)
}

// StopRecurring implements stop_recurring: idempotent on an already-stopped
// series.
func (s *TodoService) StopRecurring(userID, todoID uuid.UUID, keepPending bool) (*models.Todo, error) {
	todo, err := s.todos.FindByIDAndUser(todoID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	if !todo.IsRecurring {
		return todo, nil
	}

	today := truncateToDate(time.Now())
	todo.IsRecurring = false
	todo.RRule = nil
	todo.RecurrenceEndDate = &today
	if err := s.todos.Update(todo); err != nil {
		return nil, err
	}

	if !keepPending {
		if err := s.occurrences.DeletePendingFuture(todo.ID, today); err != nil {
			return nil, err
		}
	}

	return s.todos.FindByIDAndUser(todoID, userID)
}

// CompleteOccurrence marks an occurrence completed then tops the series
// back up if the pending-future count fell below the floor.
func (s *TodoService) CompleteOccurrence(userID, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	occ, err := s.occurrences.FindByIDAndUser(occurrenceID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	occ.Complete(time.Now())
	if err := s.occurrences.Update(occ); err != nil {
		return nil, err
	}
	if err := s.ensureFloorFor(userID, occ.TodoID); err != nil {
		return nil, err
	}
	return occ, nil
}

// SkipOccurrence marks an occurrence skipped then tops the series back up.
func (s *TodoService) SkipOccurrence(userID, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	occ, err := s.occurrences.FindByIDAndUser(occurrenceID, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	occ.Skip()
	if err := s.occurrences.Update(occ); err != nil {
		return nil, err
	}
	if err := s.ensureFloorFor(userID, occ.TodoID); err != nil {
		return nil, err
	}
	return occ, nil
}

func (s *TodoService) ensureFloorFor(userID, todoID uuid.UUID) error {
	todo, err := s.todos.FindByIDAndUser(todoID, userID)
	if err != nil {
		return err
	}
	if !todo.IsRecurring || todo.RRule == nil || todo.DueAt == nil {
		return nil
	}
	return s.maintainer.EnsureFloor(todo.ID, userID, *todo.RRule, *todo.DueAt, truncateToDate(time.Now()))
}

// DeleteTodo cascades to occurrences and reminders via the migration's
// foreign keys (invariant I6); notifications referencing this todo keep
// their row with the reference nulled rather than being removed.
func (s *TodoService) DeleteTodo(userID, todoID uuid.UUID) error {
	if _, err := s.todos.FindByIDAndUser(todoID, userID); err != nil {
		return apperrors.ErrNotFound
	}
	return s.todos.Delete(todoID, userID)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
