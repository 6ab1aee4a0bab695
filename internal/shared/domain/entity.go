// Package domain provides the shared building blocks for aggregates across
// the land-administration bounded contexts: identity, timestamps, version
// counters for optimistic concurrency, and domain-event buffering.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is anything with a stable identity and audit timestamps.
type Entity interface {
	ID() uuid.UUID
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

// BaseEntity carries the identity and timestamps shared by all entities.
type BaseEntity struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewBaseEntity mints a fresh identity with current UTC timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{id: uuid.New(), createdAt: now, updatedAt: now}
}

// RehydrateBaseEntity rebuilds an entity's identity from persisted state.
func RehydrateBaseEntity(id uuid.UUID, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

func (e BaseEntity) ID() uuid.UUID        { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// Touch bumps the updatedAt timestamp. Called by every mutating method.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}
