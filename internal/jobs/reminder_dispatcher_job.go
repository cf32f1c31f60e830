package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/push"
	"github.com/remindengine/core/internal/repository"
)

// DueReminderBatchSize bounds a single tick's query (§4.5 step 1).
const DueReminderBatchSize = 200

// ReminderDispatcherJob is the Reminder Dispatcher (C10). Shape follows the
// teacher's jobs.NotificationJob (repo + dispatcher fields,
// ProcessX(ctx) (int, error), continue-on-error per item), the firing
// protocol itself follows original_source's services/reminder.py fire_reminder.
type ReminderDispatcherJob struct {
	reminders     *repository.ReminderRepository
	todos         *repository.TodoRepository
	notifications *repository.NotificationRepository
	pushDispatch  *push.Dispatcher
	log           *zap.Logger
}

func NewReminderDispatcherJob(
	reminders *repository.ReminderRepository,
	todos *repository.TodoRepository,
	notifications *repository.NotificationRepository,
	pushDispatch *push.Dispatcher,
	log *zap.Logger,
) *ReminderDispatcherJob {
	return &ReminderDispatcherJob{
		reminders:     reminders,
		todos:         todos,
		notifications: notifications,
		pushDispatch:  pushDispatch,
		log:           log,
	}
}

// Run executes one tick: query due reminders, fire each in fire_at order.
// Returns the number fired. Errors on individual reminders are logged and
// do not stop the batch (§4.5 step 2-3).
func (j *ReminderDispatcherJob) Run(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	due, err := j.reminders.DueReminders(now, DueReminderBatchSize)
	if err != nil {
		j.log.Error("query due reminders", zap.Error(err))
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	fired := 0
	for i := range due {
		select {
		case <-ctx.Done():
			j.log.Warn("reminder dispatcher tick cancelled", zap.Int("fired", fired))
			return fired, ctx.Err()
		default:
		}

		if err := j.fire(&due[i], now); err != nil {
			j.log.Error("fire reminder", zap.String("reminder_id", due[i].ID.String()), zap.Error(err))
			continue
		}
		fired++
	}

	j.log.Info("reminder dispatcher tick complete", zap.Int("fired", fired), zap.Int("due", len(due)))
	return fired, nil
}

// fire implements the per-reminder firing protocol, §4.5 steps a-e.
func (j *ReminderDispatcherJob) fire(reminder *models.Reminder, now time.Time) error {
	todo, err := j.todos.FindByID(reminder.TodoID)
	if err != nil {
		reminder.Cancel()
		return j.reminders.Update(reminder)
	}

	title := fmt.Sprintf("Reminder: %s", todo.Title)
	body := "Task reminder"
	if todo.DueAt != nil {
		body = fmt.Sprintf("Due: %s", todo.DueAt.Format("Jan 2, 2006 3:04 PM"))
	}

	notification := &models.Notification{
		UserID:     reminder.UserID,
		Kind:       models.NotificationKindReminder,
		Title:      title,
		Body:       &body,
		TodoID:     &todo.ID,
		ReminderID: &reminder.ID,
	}
	if err := j.notifications.Create(notification); err != nil {
		return err
	}

	j.pushDispatch.SendToUser(reminder.UserID, push.Payload{
		Title: title,
		Body:  body,
	})

	reminder.MarkSent(now)
	return j.reminders.Update(reminder)
}
