package workflow

import (
	"time"

	"github.com/google/uuid"
)

// Transition is one accepted state change. Records are created exactly once,
// appended to the owning entity's history, and never mutated or deleted: the
// transition list is the audit trail.
type Transition struct {
	ID         uuid.UUID
	EntityID   uuid.UUID
	Domain     Domain
	From       State
	To         State
	ActorID    uuid.UUID
	Reason     string
	Metadata   map[string]string
	OccurredAt time.Time
}

// NewTransition creates an audit record for an accepted move.
func NewTransition(entityID uuid.UUID, domain Domain, from, to State, actorID uuid.UUID, reason string) Transition {
	return Transition{
		ID:         uuid.New(),
		EntityID:   entityID,
		Domain:     domain,
		From:       from,
		To:         to,
		ActorID:    actorID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}

// WithMetadata attaches supplementary key/value context to the record.
func (t Transition) WithMetadata(md map[string]string) Transition {
	if len(md) == 0 {
		return t
	}
	copied := make(map[string]string, len(md))
	for k, v := range md {
		copied[k] = v
	}
	t.Metadata = copied
	return t
}

// Recorder accumulates transitions applied to an aggregate since it was
// loaded. Repositories persist the pending records in the same transaction
// as the state change, then clear the recorder.
type Recorder struct {
	pending []Transition
}

// Record appends an accepted transition.
func (r *Recorder) Record(t Transition) {
	r.pending = append(r.pending, t)
}

// Pending returns transitions not yet persisted.
func (r *Recorder) Pending() []Transition {
	return r.pending
}

// ClearPending discards recorded transitions after they have been persisted.
func (r *Recorder) ClearPending() {
	r.pending = nil
}
