package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Handler consumes a published payload.
type Handler func(ctx context.Context, payload []byte)

// InProcessBus is a synchronous in-memory Publisher for local mode (no
// RabbitMQ configured). Handlers run on the publishing goroutine.
type InProcessBus struct {
	mu       sync.Mutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// NewInProcessBus creates an in-process bus.
func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessBus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a routing key.
func (b *InProcessBus) Subscribe(routingKey string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[routingKey] = append(b.handlers[routingKey], handler)
}

// Publish dispatches the payload synchronously to every handler
// registered for the routing key.
func (b *InProcessBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	b.mu.Lock()
	handlers := append([]Handler(nil), b.handlers[routingKey]...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx, payload)
	}
	b.logger.Debug("event dispatched", "routing_key", routingKey, "handlers", len(handlers))
	return nil
}

// Close is a no-op.
func (b *InProcessBus) Close() error {
	return nil
}

// NoopPublisher discards every event. Used when alerting is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (NoopPublisher) Close() error                                  { return nil }
