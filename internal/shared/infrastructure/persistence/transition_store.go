// Package persistence holds storage shared by every bounded context. The
// transition store is the append-only audit trail: one row per accepted
// state change, never updated, never deleted.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// TransitionStore appends and reads workflow transition records.
type TransitionStore struct {
	conn database.Connection
}

// NewTransitionStore creates a transition store.
func NewTransitionStore(conn database.Connection) *TransitionStore {
	return &TransitionStore{conn: conn}
}

// AppendAll inserts the pending transitions of an aggregate. Called inside
// the same transaction as the aggregate's conditional update.
func (s *TransitionStore) AppendAll(ctx context.Context, transitions []workflow.Transition) error {
	exec := database.ExecutorFromContext(ctx, s.conn)
	for _, tr := range transitions {
		var metadata []byte
		if len(tr.Metadata) > 0 {
			var err error
			metadata, err = json.Marshal(tr.Metadata)
			if err != nil {
				return fmt.Errorf("marshal transition metadata: %w", err)
			}
		}

		_, err := exec.Exec(ctx, `
			INSERT INTO transitions (id, entity_id, domain, from_state, to_state, actor_id, reason, metadata, occurred_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			tr.ID, tr.EntityID, string(tr.Domain), string(tr.From), string(tr.To),
			tr.ActorID, tr.Reason, metadata, tr.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("append transition: %w", err)
		}
	}
	return nil
}

// ListByEntity returns the full transition history for one record, oldest
// first.
func (s *TransitionStore) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]workflow.Transition, error) {
	exec := database.ExecutorFromContext(ctx, s.conn)
	rows, err := exec.Query(ctx, `
		SELECT id, entity_id, domain, from_state, to_state, actor_id, reason, metadata, occurred_at
		FROM transitions
		WHERE entity_id = $1
		ORDER BY occurred_at, id`,
		entityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workflow.Transition
	for rows.Next() {
		var (
			tr       workflow.Transition
			dom      string
			from, to string
			metadata []byte
		)
		if err := rows.Scan(&tr.ID, &tr.EntityID, &dom, &from, &to, &tr.ActorID, &tr.Reason, &metadata, &tr.OccurredAt); err != nil {
			return nil, err
		}
		tr.Domain = workflow.Domain(dom)
		tr.From = workflow.State(from)
		tr.To = workflow.State(to)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &tr.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal transition metadata: %w", err)
			}
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}
