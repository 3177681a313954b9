package notification

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"go-care/internal/events"
	"go-care/internal/messaging/kafka"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregateLeaveRequest = "leave_request"

// Dispatcher hands a leave notification off after the primary write has
// committed. It never reports failure to the caller.
type Dispatcher interface {
	DispatchLeave(ctx context.Context, event events.LeaveNotificationEvent)
}

type OutboxDispatcher struct {
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
	failures atomic.Int64
}

func NewOutboxDispatcher(outbox kafka.OutboxRepository, logger ...*zap.Logger) *OutboxDispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &OutboxDispatcher{outbox: outbox, logger: l}
}

func (d *OutboxDispatcher) DispatchLeave(ctx context.Context, event events.LeaveNotificationEvent) {
	if event.EventType == "" {
		event.EventType = "leave_" + event.Action
	}

	payload, err := json.Marshal(event)
	if err != nil {
		d.fail(event, "marshal", err)
		return
	}

	err = d.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: aggregateLeaveRequest,
		AggregateID:   event.LeaveRequestID,
		EventType:     event.EventType,
		Topic:         events.LeaveNotificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		d.fail(event, "enqueue", err)
		return
	}

	d.logger.Info("leave notification queued",
		zap.String("request_id", event.RequestID),
		zap.String("leave_request_id", event.LeaveRequestID),
		zap.String("action", event.Action),
	)
}

// Failures is the number of notifications dropped since start.
func (d *OutboxDispatcher) Failures() int64 {
	return d.failures.Load()
}

func (d *OutboxDispatcher) fail(event events.LeaveNotificationEvent, stage string, err error) {
	total := d.failures.Add(1)
	d.logger.Error("leave notification dropped",
		zap.String("stage", stage),
		zap.String("request_id", event.RequestID),
		zap.String("leave_request_id", event.LeaveRequestID),
		zap.String("action", event.Action),
		zap.Int64("dropped_total", total),
		zap.Error(err),
	)
}

type noopDispatcher struct{}

func (noopDispatcher) DispatchLeave(context.Context, events.LeaveNotificationEvent) {}

func NoopDispatcher() Dispatcher { return noopDispatcher{} }
