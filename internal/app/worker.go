package app

import (
	"context"

	"go-care/internal/config"
	"go-care/internal/messaging/kafka"
	"go-care/internal/messaging/kafka/producer"
	"go-care/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka and purges sent rows on a schedule
// until ctx is cancelled.
func RunWorker(ctx context.Context, cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	scheduler := cron.New()
	if _, err := producer.SchedulePurge(scheduler, cfg.Outbox.PurgeSchedule, outboxRepo, cfg.Outbox.Retention, logger, nil); err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Outbox.PollInterval,
		cfg.Outbox.BatchSize,
	)

	logger.Info("worker shutting down")
	return nil
}
