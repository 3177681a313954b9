package producer

import (
	"context"
	"go-care/internal/messaging/kafka"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SchedulePurge registers a cron job deleting sent outbox rows older than retention.
func SchedulePurge(
	c *cron.Cron,
	schedule string,
	repo kafka.OutboxRepository,
	retention time.Duration,
	logger *zap.Logger,
	now func() time.Time,
) (cron.EntryID, error) {
	if now == nil {
		now = time.Now
	}
	log := logger.Named("kafka.producer.purge")

	return c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		PurgeSentEvents(ctx, repo, retention, log, now)
	})
}

func PurgeSentEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	retention time.Duration,
	logger *zap.Logger,
	now func() time.Time,
) {
	cutoff := now().UTC().Add(-retention)
	n, err := repo.PurgeSent(ctx, cutoff)
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return
	}
	logger.Info("purged sent outbox events", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
}
