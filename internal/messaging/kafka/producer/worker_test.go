package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-care/internal/messaging/kafka"
	kafkaMock "go-care/internal/messaging/kafka/mock"
	"go-care/internal/messaging/kafka/producer"

	"github.com/robfig/cron/v3"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "o1", RequestID: "rid-1", AggregateID: "leave-1", EventType: "leave_submitted", AggregateType: "leave_request", Topic: "t1", Payload: []byte(`{}`)},
			{ID: "o2", AggregateID: "leave-2", EventType: "leave_approved", AggregateType: "leave_request", Topic: "t1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o1").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 50)

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.written, 2)
		assert.Equal(t, []byte("leave-1"), writer.written[0].Key)
		assert.Len(t, writer.written[0].Headers, 3)
		assert.Len(t, writer.written[1].Headers, 2)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "down"}

		repo.EXPECT().ListPending(gomock.Any(), 10).Return([]kafka.OutboxEvent{
			{ID: "o1", Topic: "down", Payload: []byte(`{}`)},
			{ID: "o2", Topic: "up", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 10)

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 50)

		assert.Error(t, err)
	})
}

func TestPurgeSentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().PurgeSent(gomock.Any(), now.Add(-48*time.Hour)).Return(int64(3), nil)

	producer.PurgeSentEvents(context.Background(), repo, 48*time.Hour, zap.NewNop(), func() time.Time { return now })
}

func TestSchedulePurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	c := cron.New()

	id, err := producer.SchedulePurge(c, "@daily", repo, time.Hour, zap.NewNop(), nil)
	assert.NoError(t, err)
	assert.NotZero(t, id)

	_, err = producer.SchedulePurge(c, "every tuesday-ish", repo, time.Hour, zap.NewNop(), nil)
	assert.Error(t, err)
}
