package consumer

import (
	"context"
	"encoding/json"
	"go-care/internal/events"
	"go-care/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the slice of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveNotifications forwards every leave notification to notifier.
// Delivery is best effort: failures are logged and the offset still moves on.
func ConsumeLeaveNotifications(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notification")
	log.Info("leave notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notification consumer stopped")
				return
			}
			log.Error("fetch leave notification message failed", zap.Error(err))
			continue
		}

		HandleLeaveNotification(ctx, msg, notifier, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave notification message failed", zap.Error(err))
		}
	}
}

// HandleLeaveNotification reports whether the notification was delivered.
func HandleLeaveNotification(
	ctx context.Context,
	msg kafkago.Message,
	notifier notification.Notifier,
	log *zap.Logger,
) bool {
	var event events.LeaveNotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave notification event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return false
	}

	if err := notifier.NotifyLeave(ctx, event); err != nil {
		log.Error("leave notification delivery failed",
			zap.String("request_id", event.RequestID),
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("action", event.Action),
			zap.Error(err),
		)
		return false
	}

	log.Info("leave notification delivered",
		zap.String("request_id", event.RequestID),
		zap.String("leave_request_id", event.LeaveRequestID),
		zap.String("action", event.Action),
	)
	return true
}
