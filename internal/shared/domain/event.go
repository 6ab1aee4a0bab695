package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact about a record that other parts of the system (and
// external parties) may react to. Events are published through the outbox
// after the owning transaction commits.
type DomainEvent interface {
	EventID() uuid.UUID
	AggregateID() uuid.UUID
	AggregateType() string
	RoutingKey() string
	OccurredAt() time.Time
	Metadata() EventMetadata
}

// EventMetadata identifies who caused an event and correlates it with the
// operation that produced it. ActorRole is the role string supplied by the
// upstream access-control layer (planner, surveyor, examiner, registrar, ...).
type EventMetadata struct {
	ActorID       uuid.UUID `json:"actor_id"`
	ActorRole     string    `json:"actor_role,omitempty"`
	CorrelationID uuid.UUID `json:"correlation_id"`
	CausationID   uuid.UUID `json:"causation_id"`
}

// BaseEvent implements DomainEvent for embedding in concrete events.
type BaseEvent struct {
	eventID       uuid.UUID
	aggregateID   uuid.UUID
	aggregateType string
	routingKey    string
	occurredAt    time.Time
	metadata      EventMetadata
}

// NewBaseEvent stamps a new event against an aggregate.
func NewBaseEvent(aggregateID uuid.UUID, aggregateType, routingKey string) BaseEvent {
	return BaseEvent{
		eventID:       uuid.New(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		routingKey:    routingKey,
		occurredAt:    time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID      { return e.eventID }
func (e BaseEvent) AggregateID() uuid.UUID  { return e.aggregateID }
func (e BaseEvent) AggregateType() string   { return e.aggregateType }
func (e BaseEvent) RoutingKey() string      { return e.routingKey }
func (e BaseEvent) OccurredAt() time.Time   { return e.occurredAt }
func (e BaseEvent) Metadata() EventMetadata { return e.metadata }

// SetMetadata attaches actor and correlation context to the event.
func (e *BaseEvent) SetMetadata(md EventMetadata) { e.metadata = md }
