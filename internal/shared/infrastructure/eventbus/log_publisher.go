package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// LogPublisher is the local-mode publisher: events are logged instead of
// sent to a broker. It also retains recent publishes for tests.
type LogPublisher struct {
	logger *slog.Logger

	mu        sync.Mutex
	published []PublishedEvent
}

// PublishedEvent is one event seen by the LogPublisher.
type PublishedEvent struct {
	RoutingKey string
	Payload    []byte
}

// NewLogPublisher creates a publisher that only logs.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish records and logs the event.
func (p *LogPublisher) Publish(_ context.Context, routingKey string, payload []byte) error {
	p.mu.Lock()
	p.published = append(p.published, PublishedEvent{RoutingKey: routingKey, Payload: payload})
	p.mu.Unlock()

	p.logger.Debug("event published (local mode)", "routing_key", routingKey, "size", len(payload))
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }

// Published returns a copy of everything published so far.
func (p *LogPublisher) Published() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.published...)
}
