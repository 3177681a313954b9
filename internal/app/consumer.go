package app

import (
	"context"

	"go-care/internal/config"
	"go-care/internal/events"
	"go-care/internal/messaging/kafka/consumer"
	"go-care/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer forwards leave notifications to the notification function
// until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.LeaveNotificationTopic,
		GroupID:        cfg.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	notifier := notification.NewFunctionClient(
		cfg.Notification.FunctionURL,
		cfg.Notification.FunctionKey,
		cfg.Notification.Timeout,
	)

	consumer.ConsumeLeaveNotifications(ctx, reader, notifier, logger)

	logger.Info("consumer shutting down")
	return nil
}
