package eventlog

import (
	"context"
	"time"

	"github.com/osse101/RewardReels_Go/internal/logger"
)

// CleanupJob deletes events past the retention period
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	return &CleanupJob{service: service, retention: retention}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, "retention", j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", time.Since(start))
		return err
	}

	if count > 0 {
		log.Info(LogMsgCleanupJobCompleted, "deleted_count", count, "duration", time.Since(start))
	}
	return nil
}
