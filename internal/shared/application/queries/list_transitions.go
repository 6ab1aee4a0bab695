// Package queries holds read-side operations shared by every bounded
// context. The transition history query is domain-agnostic: audit records
// for schemes, plans, deeds, titles and cases all live in one table.
package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/workflow"
)

// TransitionReader reads the audit trail for one record.
type TransitionReader interface {
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]workflow.Transition, error)
}

// ListTransitionsQuery fetches the full audit history of a record, oldest
// first.
type ListTransitionsQuery struct {
	EntityID uuid.UUID
}

func (ListTransitionsQuery) QueryName() string { return "shared.list_transitions" }

// ListTransitionsHandler handles the ListTransitionsQuery.
type ListTransitionsHandler struct {
	reader TransitionReader
}

// NewListTransitionsHandler creates a new ListTransitionsHandler.
func NewListTransitionsHandler(reader TransitionReader) *ListTransitionsHandler {
	return &ListTransitionsHandler{reader: reader}
}

// Handle executes the ListTransitionsQuery.
func (h *ListTransitionsHandler) Handle(ctx context.Context, q ListTransitionsQuery) ([]workflow.Transition, error) {
	return h.reader.ListByEntity(ctx, q.EntityID)
}
