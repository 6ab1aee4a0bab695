// Package outbox implements the transactional outbox: domain events are
// stored in the same transaction as the state change they describe, then
// published asynchronously. A notification or broker failure therefore never
// rolls back an accepted transition.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Message is one stored domain event awaiting publication.
type Message struct {
	ID               int64
	EventID          uuid.UUID
	AggregateType    string
	AggregateID      uuid.UUID
	RoutingKey       string
	Payload          json.RawMessage
	Metadata         json.RawMessage
	CreatedAt        time.Time
	PublishedAt      *time.Time
	NextRetryAt      *time.Time
	RetryCount       int
	LastError        *string
	DeadLetteredAt   *time.Time
	DeadLetterReason *string
}

// FromEvent serializes a domain event into an outbox message.
func FromEvent(event domain.DomainEvent) (*Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(event.Metadata())
	if err != nil {
		return nil, err
	}
	return &Message{
		EventID:       event.EventID(),
		AggregateType: event.AggregateType(),
		AggregateID:   event.AggregateID(),
		RoutingKey:    event.RoutingKey(),
		Payload:       payload,
		Metadata:      metadata,
		CreatedAt:     event.OccurredAt(),
	}, nil
}

// FromEvents converts a batch of buffered events.
func FromEvents(events []domain.DomainEvent) ([]*Message, error) {
	msgs := make([]*Message, 0, len(events))
	for _, ev := range events {
		msg, err := FromEvent(ev)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// IsPublished reports whether the message already went out.
func (m *Message) IsPublished() bool { return m.PublishedAt != nil }
