package domain

import (
	"time"

	"github.com/google/uuid"
)

// AggregateRoot is the consistency boundary for persistence. The version
// counter backs the optimistic-concurrency contract: every state-changing
// write is conditioned on the version observed at read time.
type AggregateRoot interface {
	Entity
	Version() int
	DomainEvents() []DomainEvent
	AddDomainEvent(event DomainEvent)
	ClearDomainEvents()
}

// BaseAggregateRoot implements AggregateRoot for embedding.
type BaseAggregateRoot struct {
	BaseEntity
	version int
	events  []DomainEvent
}

// NewBaseAggregateRoot creates a fresh aggregate at version zero.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity()}
}

// RehydrateBaseAggregateRoot rebuilds an aggregate from storage. No events
// are carried over; events describe new facts, not replayed history.
func RehydrateBaseAggregateRoot(id uuid.UUID, version int, createdAt, updatedAt time.Time) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: RehydrateBaseEntity(id, createdAt, updatedAt),
		version:    version,
	}
}

// Version returns the persisted version this aggregate was loaded at.
func (a *BaseAggregateRoot) Version() int { return a.version }

// DomainEvents returns the uncommitted events raised since load.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent { return a.events }

// AddDomainEvent buffers an event for publication after commit.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// ClearDomainEvents drops buffered events once they reach the outbox.
func (a *BaseAggregateRoot) ClearDomainEvents() { a.events = nil }
