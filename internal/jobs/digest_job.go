package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/remindengine/core/internal/models"
	"github.com/remindengine/core/internal/repository"
)

// digestListCap bounds how many titles of each kind the bullet body shows
// before truncating to "...and M more" (§4.7 step 4).
const digestListCap = 5

// priorityDot is the colored-dot marker §4.7 step 4 requires.
var priorityDot = map[models.Priority]string{
	models.PriorityNone:   "⚪",
	models.PriorityLow:    "🔵",
	models.PriorityMedium: "🟡",
	models.PriorityHigh:   "🔴",
}

// DigestDispatcherJob is the Digest Dispatcher (C11): runs hourly, and for
// each user whose local wall-clock hour matches their configured digest
// hour, writes a single in-app summary notification. Grounded on
// original_source's services/daily_digest.py.
type DigestDispatcherJob struct {
	preferences   *repository.PreferencesRepository
	todos         *repository.TodoRepository
	occurrences   *repository.OccurrenceRepository
	notifications *repository.NotificationRepository
	log           *zap.Logger
}

func NewDigestDispatcherJob(
	preferences *repository.PreferencesRepository,
	todos *repository.TodoRepository,
	occurrences *repository.OccurrenceRepository,
	notifications *repository.NotificationRepository,
	log *zap.Logger,
) *DigestDispatcherJob {
	return &DigestDispatcherJob{
		preferences:   preferences,
		todos:         todos,
		occurrences:   occurrences,
		notifications: notifications,
		log:           log,
	}
}

// Run evaluates every digest-enabled user's local hour and writes a digest
// notification for those whose hour matches now and haven't received one
// today. Returns the number of digests written.
func (j *DigestDispatcherJob) Run(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	prefs, err := j.preferences.ListDigestEnabled()
	if err != nil {
		j.log.Error("list digest-enabled preferences", zap.Error(err))
		return 0, err
	}

	written := 0
	for i := range prefs {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		ok, err := j.runForUser(&prefs[i], now)
		if err != nil {
			j.log.Error("digest for user", zap.String("user_id", prefs[i].UserID.String()), zap.Error(err))
			continue
		}
		if ok {
			written++
		}
	}

	j.log.Info("digest dispatcher tick complete", zap.Int("written", written), zap.Int("candidates", len(prefs)))
	return written, nil
}

func (j *DigestDispatcherJob) runForUser(prefs *models.UserPreferences, now time.Time) (bool, error) {
	loc, err := time.LoadLocation(prefs.Timezone)
	if err != nil {
		j.log.Warn("invalid timezone, skipping digest", zap.String("user_id", prefs.UserID.String()), zap.String("timezone", prefs.Timezone))
		return false, nil
	}

	local := now.In(loc)
	if prefs.DailyDigestHour == nil || local.Hour() != *prefs.DailyDigestHour {
		return false, nil
	}

	todayLocal := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	already, err := j.notifications.ExistsForDigest(prefs.UserID, todayLocal)
	if err != nil {
		return false, err
	}
	if already {
		return false, nil
	}

	nonRecurring, err := j.todos.DueTodayNonRecurring(prefs.UserID, todayLocal)
	if err != nil {
		return false, err
	}

	recurringTodoIDs, err := j.occurrences.TodoIDsWithOccurrenceOn(prefs.UserID, todayLocal)
	if err != nil {
		return false, err
	}
	recurringTitles := make([]string, 0, len(recurringTodoIDs))
	for _, id := range recurringTodoIDs {
		todo, err := j.todos.FindByID(id)
		if err != nil {
			continue
		}
		recurringTitles = append(recurringTitles, todo.Title)
	}

	total := len(nonRecurring) + len(recurringTitles)
	title, body := composeDigest(total, nonRecurring, recurringTitles)

	notification := &models.Notification{
		UserID: prefs.UserID,
		Kind:   models.NotificationKindDailyDigest,
		Title:  title,
		Body:   &body,
	}
	return true, j.notifications.Create(notification)
}

func composeDigest(total int, nonRecurring []models.Todo, recurringTitles []string) (string, string) {
	if total == 0 {
		return "Daily Digest: No tasks due today", "You have no tasks due today. Enjoy your day!"
	}

	title := fmt.Sprintf("Daily Digest: %d task(s) due today", total)

	var body string
	shown := 0
	for i, t := range nonRecurring {
		if i >= digestListCap {
			break
		}
		body += fmt.Sprintf("%s %s\n", priorityDot[t.Priority], t.Title)
		shown++
	}
	for i, rt := range recurringTitles {
		if i >= digestListCap {
			break
		}
		body += fmt.Sprintf("%s (recurring)\n", rt)
		shown++
	}

	truncated := total - shown
	if truncated > 0 {
		body += fmt.Sprintf("...and %d more", truncated)
	}
	return title, body
}
