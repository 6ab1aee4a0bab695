package application

import (
	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

// Actor identifies the authenticated caller of an operation. The excluded
// access-control layer has already authorized the role; the core only records
// it for audit and notification routing.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// NewEventMetadata stamps metadata for a fresh command execution: a new
// correlation chain rooted at this operation.
func NewEventMetadata(actor Actor) domain.EventMetadata {
	correlationID := uuid.New()
	return domain.EventMetadata{
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		CorrelationID: correlationID,
		CausationID:   correlationID,
	}
}

// ApplyEventMetadata stamps every buffered event with the same metadata so
// downstream consumers can trace a whole decision as one causal chain.
func ApplyEventMetadata(events []domain.DomainEvent, md domain.EventMetadata) {
	type metadataSetter interface {
		SetMetadata(domain.EventMetadata)
	}
	for _, ev := range events {
		if setter, ok := ev.(metadataSetter); ok {
			setter.SetMetadata(md)
		}
	}
}
