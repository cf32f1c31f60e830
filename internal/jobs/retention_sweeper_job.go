package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/remindengine/core/internal/repository"
)

// NotificationRetentionWindow is the horizon past which a notification is
// pruned regardless of read status (§4.8, invariant I8).
const NotificationRetentionWindow = 30 * 24 * time.Hour

// RetentionSweeperJob is C12, in the same single-repo-method idiom as the
// teacher's device_cleanup_job.go/account_purge_job.go.
type RetentionSweeperJob struct {
	notifications *repository.NotificationRepository
	log           *zap.Logger
}

func NewRetentionSweeperJob(notifications *repository.NotificationRepository, log *zap.Logger) *RetentionSweeperJob {
	return &RetentionSweeperJob{notifications: notifications, log: log}
}

// Run deletes every notification older than the retention window and
// returns the number removed.
func (j *RetentionSweeperJob) Run(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-NotificationRetentionWindow)

	removed, err := j.notifications.DeleteOlderThan(cutoff)
	if err != nil {
		j.log.Error("retention sweep", zap.Error(err))
		return 0, err
	}

	j.log.Info("retention sweep complete", zap.Int64("removed", removed))
	return removed, nil
}
