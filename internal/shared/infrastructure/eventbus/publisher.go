// Package eventbus publishes domain events to the message broker. Affected
// parties (planners, surveyors, conveyancers, objectors) are notified by
// external services consuming these events; the workflow core only emits.
package eventbus

import "context"

// Publisher sends serialized events to the broker.
type Publisher interface {
	// Publish sends a payload under a routing key.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close releases the broker connection.
	Close() error
}
