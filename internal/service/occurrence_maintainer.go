package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/remindengine/core/internal/recurrence"
	"github.com/remindengine/core/internal/repository"
)

// MinFutureOccurrences is the floor below which the maintainer tops a
// series back up (§4.4).
const MinFutureOccurrences = 5

// OccurrenceMaintainer is C9: it keeps a recurring series' pending
// occurrence window full without ever double-inserting a date, grounded
// on original_source's todo.py `_ensure_future_occurrences` and the
// civic-os ExpandRecurringSeriesWorker's existing-dates-then-insert shape.
type OccurrenceMaintainer struct {
	occurrences *repository.OccurrenceRepository
	todos       *repository.TodoRepository
	log         *zap.Logger
}

func NewOccurrenceMaintainer(occurrences *repository.OccurrenceRepository, todos *repository.TodoRepository, log *zap.Logger) *OccurrenceMaintainer {
	return &OccurrenceMaintainer{occurrences: occurrences, todos: todos, log: log}
}

// TopUp enumerates dates within [fromDate, windowEnd], inserts the ones not
// already materialized (capped at max), and bumps occurrences_generated by
// the number actually inserted. Conflicts are a no-op, making repeated
// calls for the same series idempotent (P2).
func (m *OccurrenceMaintainer) TopUp(todoID, userID uuid.UUID, rrule string, anchor, fromDate, windowEnd time.Time, max int) (int, error) {
	if max <= 0 {
		max = recurrence.DefaultEnumerationCap
	}

	existing, err := m.occurrences.ExistingDates(todoID)
	if err != nil {
		return 0, err
	}

	dates, err := recurrence.Enumerate(rrule, anchor, fromDate, windowEnd, max)
	if err != nil {
		return 0, err
	}

	missing := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if !existing[d] {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	inserted, err := m.occurrences.BulkInsertPending(todoID, userID, missing)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		if err := m.todos.IncrementOccurrencesGenerated(todoID, inserted); err != nil {
			return inserted, err
		}
	}
	m.log.Debug("topped up occurrences", zap.String("todo_id", todoID.String()), zap.Int("inserted", inserted))
	return inserted, nil
}

// EnsureFloor tops up a series only when its pending future count has
// fallen below MinFutureOccurrences, called after a completion or skip.
func (m *OccurrenceMaintainer) EnsureFloor(todoID, userID uuid.UUID, rrule string, anchor, today time.Time) error {
	count, err := m.occurrences.PendingFutureCount(todoID, today)
	if err != nil {
		return err
	}
	if count >= MinFutureOccurrences {
		return nil
	}

	from := today
	if latest, err := m.occurrences.LatestDate(todoID); err != nil {
		return err
	} else if latest != nil {
		from = latest.AddDate(0, 0, 1)
	}

	windowEnd := from.AddDate(1, 0, 0) // generous outer bound; the count cap does the real limiting here
	_, err = m.TopUp(todoID, userID, rrule, anchor, from, windowEnd, MinFutureOccurrences*2)
	return err
}
