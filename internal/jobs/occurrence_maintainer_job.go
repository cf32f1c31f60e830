package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/remindengine/core/internal/recurrence"
	"github.com/remindengine/core/internal/repository"
	"github.com/remindengine/core/internal/service"
)

// MaintainerWindowDays is the daily top-up window per series (§4.4).
const MaintainerWindowDays = 30

// OccurrenceMaintainerJob drives service.OccurrenceMaintainer.TopUp across
// every active recurring series once a day, in the teacher's job idiom
// (single repo dependency, ProcessX(ctx) (int, error), continue-on-error).
type OccurrenceMaintainerJob struct {
	todos      *repository.TodoRepository
	maintainer *service.OccurrenceMaintainer
	log        *zap.Logger
}

func NewOccurrenceMaintainerJob(
	todos *repository.TodoRepository,
	maintainer *service.OccurrenceMaintainer,
	log *zap.Logger,
) *OccurrenceMaintainerJob {
	return &OccurrenceMaintainerJob{todos: todos, maintainer: maintainer, log: log}
}

// Run tops up every active recurring series' pending occurrences out to
// MaintainerWindowDays from today. Returns the number of occurrences
// inserted across all series.
func (j *OccurrenceMaintainerJob) Run(ctx context.Context) (int, error) {
	series, err := j.todos.ListActiveRecurring()
	if err != nil {
		j.log.Error("list active recurring todos", zap.Error(err))
		return 0, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	total := 0
	for i := range series {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		todo := &series[i]
		if todo.RRule == nil || todo.DueAt == nil {
			continue
		}

		windowEnd := today.AddDate(0, 0, MaintainerWindowDays)
		inserted, err := j.maintainer.TopUp(todo.ID, todo.UserID, *todo.RRule, *todo.DueAt, today, windowEnd, recurrence.DefaultEnumerationCap)
		if err != nil {
			j.log.Error("top up series", zap.String("todo_id", todo.ID.String()), zap.Error(err))
			continue
		}
		total += inserted
	}

	j.log.Info("occurrence maintainer sweep complete", zap.Int("series", len(series)), zap.Int("inserted", total))
	return total, nil
}
