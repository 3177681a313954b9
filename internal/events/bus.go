package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type LeaveMutatedHandler func(ctx context.Context, event LeaveMutatedEvent) error

// LeaveMutatedPublisher is what mutating services depend on.
type LeaveMutatedPublisher interface {
	PublishLeaveMutated(ctx context.Context, event LeaveMutatedEvent)
}

// Bus is an in-process publish/subscribe hub. Publishing runs every
// subscriber in registration order; a failing subscriber is logged and
// does not stop the others or reach the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]LeaveMutatedHandler
	order    []string
	logger   *zap.Logger
}

func NewBus(logger ...*zap.Logger) *Bus {
	l := zap.L().Named("events.bus")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("events.bus")
	}
	return &Bus{handlers: map[string]LeaveMutatedHandler{}, logger: l}
}

// SubscribeLeaveMutated registers h under name; registering a name twice replaces it.
func (b *Bus) SubscribeLeaveMutated(name string, h LeaveMutatedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.handlers[name]; !exists {
		b.order = append(b.order, name)
	}
	b.handlers[name] = h
}

func (b *Bus) PublishLeaveMutated(ctx context.Context, event LeaveMutatedEvent) {
	b.mu.RLock()
	names := append([]string(nil), b.order...)
	handlers := make([]LeaveMutatedHandler, len(names))
	for i, n := range names {
		handlers[i] = b.handlers[n]
	}
	b.mu.RUnlock()

	for i, h := range handlers {
		if err := h(ctx, event); err != nil {
			b.logger.Error("leave mutated subscriber failed",
				zap.String("subscriber", names[i]),
				zap.String("source", event.Source),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
		}
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishLeaveMutated(context.Context, LeaveMutatedEvent) {}

// NoopPublisher is used when a service is built without a bus.
func NoopPublisher() LeaveMutatedPublisher { return noopPublisher{} }
