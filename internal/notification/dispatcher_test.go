package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-care/internal/events"
	"go-care/internal/messaging/kafka"
	kafkaMock "go-care/internal/messaging/kafka/mock"
	"go-care/internal/notification"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func submittedEvent() events.LeaveNotificationEvent {
	return events.LeaveNotificationEvent{
		RequestID:      "rid-1",
		CompanyID:      "company-1",
		LeaveRequestID: "leave-1",
		Action:         events.LeaveActionSubmitted,
		StaffID:        "staff-1",
		BranchID:       "branch-1",
		LeaveType:      "annual",
		StartDate:      "2026-03-02",
		EndDate:        "2026-03-06",
	}
}

func TestOutboxDispatcher_DispatchLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("queues outbox row on the notification topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		d := notification.NewOutboxDispatcher(outbox, zap.NewNop())

		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.LeaveNotificationTopic, e.Topic)
			assert.Equal(t, "leave-1", e.AggregateID)
			assert.Equal(t, "leave_submitted", e.EventType)
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)
			assert.Equal(t, "rid-1", e.RequestID)

			var got events.LeaveNotificationEvent
			assert.NoError(t, json.Unmarshal(e.Payload, &got))
			assert.Equal(t, "staff-1", got.StaffID)
			assert.Nil(t, got.ReviewerID)
			return nil
		})

		d.DispatchLeave(ctx, submittedEvent())

		assert.Equal(t, int64(0), d.Failures())
	})

	t.Run("enqueue failure is swallowed and counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		d := notification.NewOutboxDispatcher(outbox, zap.NewNop())

		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox table locked")).Times(2)

		assert.NotPanics(t, func() {
			d.DispatchLeave(ctx, submittedEvent())
			d.DispatchLeave(ctx, submittedEvent())
		})
		assert.Equal(t, int64(2), d.Failures())
	})
}
